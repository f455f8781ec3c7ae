package repository

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
)

// QuoteInput campos de criação de orçamento.
type QuoteInput struct {
	ClientID   string
	Date       string
	Items      []entity.QuoteItem
	TravelCost float64
	Tax        float64
	Discount   float64
	Status     entity.QuoteStatus
	Notes      string
}

// QuotePatch atualização parcial; campos nil não são enviados.
// Items substitui a lista inteira quando presente (o backend guarda as
// linhas como documento único, não como tabela filha).
type QuotePatch struct {
	ClientID   *string
	Date       *string
	Items      *[]entity.QuoteItem
	TravelCost *float64
	Tax        *float64
	Discount   *float64
	Status     *entity.QuoteStatus
	Notes      *string
}

// QuoteRepository define a porta de persistência remota para Quote.
// ListAll devolve os orçamentos por data decrescente.
type QuoteRepository interface {
	ListAll(ctx context.Context) ([]entity.Quote, error)
	Create(ctx context.Context, in QuoteInput) (*entity.Quote, error)
	Update(ctx context.Context, id string, patch QuotePatch) (*entity.Quote, error)
	Delete(ctx context.Context, id string) error
}
