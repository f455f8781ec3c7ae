package state

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
)

// QuoteLine linha do orçamento já resolvida para impressão (nome do serviço
// em vez do id).
type QuoteLine struct {
	Description string
	Unit        string
	Quantity    float64
	UnitPrice   float64
}

// QuotePDFGenerator porta de geração do documento PDF do orçamento.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote, client *entity.Client, lines []QuoteLine) ([]byte, error)
}
