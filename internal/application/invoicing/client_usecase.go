package invoicing

import (
	"regexp"

	"github.com/tu-usuario/facturacion-tw/internal/application/dto"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
	"github.com/tu-usuario/facturacion-tw/internal/domain/repository"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ClientUseCase casos de uso de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente desde el formulario. Nombre y número de
// identificación son obligatorios; el correo, si viene, debe ser válido y
// el número de identificación no puede repetirse.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.IDType != "" && !entity.ValidIDType(in.IDType) {
		return nil, domain.ErrInvalidInput
	}
	if in.PersonType != "" &&
		in.PersonType != entity.PersonTypeJuridica && in.PersonType != entity.PersonTypeNatural {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != "" && !emailRe.MatchString(in.Email) {
		return nil, domain.ErrInvalidEmail
	}

	existing, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].TaxID == in.TaxID {
			return nil, domain.ErrDuplicate
		}
	}

	client := entity.Client{
		PersonType:             defaultString(in.PersonType, entity.PersonTypeJuridica),
		IDType:                 defaultString(in.IDType, entity.IDTypeNIT),
		TaxID:                  in.TaxID,
		Name:                   in.Name,
		TradeName:              in.TradeName,
		EconomicActivity:       in.EconomicActivity,
		IVAResponsibility:      in.IVAResponsibility,
		FiscalResponsibilities: in.FiscalResponsibilities,
		Email:                  in.Email,
		Phone:                  in.Phone,
	}
	stored, err := uc.repo.Append(client)
	if err != nil {
		return nil, err
	}
	resp := toClientResponse(stored)
	return &resp, nil
}

// List devuelve semilla y clientes creados, ordenados por nombre.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for i := range list {
		out = append(out, toClientResponse(&list[i]))
	}
	return out, nil
}

// GetByID obtiene un cliente del listado combinado.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toClientResponse(c)
	return &resp, nil
}
