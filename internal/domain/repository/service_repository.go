package repository

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
)

// ServiceInput campos de criação de serviço do catálogo.
type ServiceInput struct {
	Name        string
	Description string
	BasePrice   float64
	Unit        string
}

// ServicePatch atualização parcial; campos nil não são enviados.
type ServicePatch struct {
	Name        *string
	Description *string
	BasePrice   *float64
	Unit        *string
}

// ServiceRepository define a porta de persistência remota para Service.
// ListAll devolve o catálogo ordenado por nome.
type ServiceRepository interface {
	ListAll(ctx context.Context) ([]entity.Service, error)
	Create(ctx context.Context, in ServiceInput) (*entity.Service, error)
	Update(ctx context.Context, id string, patch ServicePatch) (*entity.Service, error)
	Delete(ctx context.Context, id string) error
}
