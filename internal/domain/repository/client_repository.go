package repository

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
)

// ClientInput campos de criação de cliente; id e timestamps são atribuídos
// pelo backend remoto.
type ClientInput struct {
	Name    string
	Company string
	Phone   string
	Email   string
	Address string
	City    string
	Type    entity.ClientType
	Notes   string
}

// ClientPatch atualização parcial; campos nil não são enviados.
type ClientPatch struct {
	Name    *string
	Company *string
	Phone   *string
	Email   *string
	Address *string
	City    *string
	Type    *entity.ClientType
	Notes   *string
}

// ClientRepository define a porta de persistência remota para Client.
// ListAll devolve os registros ordenados por nome. Mutações propagam o erro
// ao chamador; Delete de id inexistente devolve domain.ErrNotFound.
type ClientRepository interface {
	ListAll(ctx context.Context) ([]entity.Client, error)
	Create(ctx context.Context, in ClientInput) (*entity.Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) (*entity.Client, error)
	Delete(ctx context.Context, id string) error
}
