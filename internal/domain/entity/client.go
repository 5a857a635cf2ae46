package entity

import "time"

// Tipos de persona para clientes.
const (
	PersonTypeJuridica = "juridica"
	PersonTypeNatural  = "natural"
)

// Tipos de identificación (Colombia).
const (
	IDTypeNIT = "NIT" // Número de Identificación Tributaria
	IDTypeCC  = "CC"  // Cédula de Ciudadanía
	IDTypeCE  = "CE"  // Cédula de Extranjería
	IDTypePA  = "PA"  // Pasaporte
	IDTypeTI  = "TI"  // Tarjeta de Identidad
)

// ValidIDType indica si t es un tipo de identificación conocido.
func ValidIDType(t string) bool {
	switch t {
	case IDTypeNIT, IDTypeCC, IDTypeCE, IDTypePA, IDTypeTI:
		return true
	}
	return false
}

// Client representa un cliente (adquiriente de la factura).
type Client struct {
	ID                     string    `json:"id"`
	PersonType             string    `json:"personType,omitempty"` // juridica | natural
	IDType                 string    `json:"idType,omitempty"`     // NIT, CC, CE, PA, TI
	TaxID                  string    `json:"taxId,omitempty"`      // NIT o cédula
	Name                   string    `json:"name"`
	TradeName              string    `json:"tradeName,omitempty"`
	EconomicActivity       string    `json:"economicActivity,omitempty"` // Código CIIU
	IVAResponsibility      string    `json:"ivaResponsibility,omitempty"`
	FiscalResponsibilities string    `json:"fiscalResponsibilities,omitempty"`
	Email                  string    `json:"email,omitempty"`
	Phone                  string    `json:"phone,omitempty"`
	Avatar                 string    `json:"avatar,omitempty"` // URL de imagen
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// ConsumidorFinalID identidad fija del cliente genérico usado cuando no se
// selecciona un cliente específico.
const ConsumidorFinalID = "client-consumidor-final"

// ConsumidorFinal devuelve el cliente genérico "Consumidor Final"
// (NIT genérico DIAN, sin correo).
func ConsumidorFinal() Client {
	return Client{
		ID:         ConsumidorFinalID,
		PersonType: PersonTypeNatural,
		IDType:     IDTypeCC,
		TaxID:      "222222222222",
		Name:       "Consumidor Final",
	}
}
