package dto

// CreateClientRequest body para POST /api/clients (formulario de creación
// de cliente).
type CreateClientRequest struct {
	PersonType             string `json:"personType,omitempty"` // juridica | natural
	IDType                 string `json:"idType,omitempty"`     // NIT, CC, CE, PA, TI
	TaxID                  string `json:"taxId"`
	Name                   string `json:"name"`
	TradeName              string `json:"tradeName,omitempty"`
	EconomicActivity       string `json:"economicActivity,omitempty"`
	IVAResponsibility      string `json:"ivaResponsibility,omitempty"`
	FiscalResponsibilities string `json:"fiscalResponsibilities,omitempty"`
	Email                  string `json:"email,omitempty"`
	Phone                  string `json:"phone,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID                     string `json:"id"`
	PersonType             string `json:"personType,omitempty"`
	IDType                 string `json:"idType,omitempty"`
	TaxID                  string `json:"taxId,omitempty"`
	Name                   string `json:"name"`
	TradeName              string `json:"tradeName,omitempty"`
	EconomicActivity       string `json:"economicActivity,omitempty"`
	IVAResponsibility      string `json:"ivaResponsibility,omitempty"`
	FiscalResponsibilities string `json:"fiscalResponsibilities,omitempty"`
	Email                  string `json:"email,omitempty"`
	Phone                  string `json:"phone,omitempty"`
	Avatar                 string `json:"avatar,omitempty"`
}
