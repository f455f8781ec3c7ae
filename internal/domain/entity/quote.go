package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus estados possíveis de um orçamento.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "rascunho"
	QuoteSent     QuoteStatus = "enviado"
	QuoteApproved QuoteStatus = "aprovado"
	QuoteRejected QuoteStatus = "rejeitado"
)

// Valid informa se o status é um dos valores aceitos.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteApproved, QuoteRejected:
		return true
	}
	return false
}

// QuoteItem é uma linha do orçamento: serviço, quantidade e snapshot do
// preço unitário no momento da emissão (o catálogo pode mudar depois).
type QuoteItem struct {
	ServiceID string
	Quantity  float64
	UnitPrice float64
}

// Quote é o documento de orçamento de um cliente: itens de serviço,
// viáticos agregados, impostos e desconto.
type Quote struct {
	ID         string
	ClientID   string
	Date       string // AAAA-MM-DD
	Items      []QuoteItem
	TravelCost float64
	Tax        float64
	Discount   float64
	Status     QuoteStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Subtotal soma quantidade × preço unitário de todas as linhas (decimal).
func (q Quote) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range q.Items {
		sum = sum.Add(decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice)))
	}
	return sum
}

// Total = subtotal + viáticos + impostos - desconto.
func (q Quote) Total() decimal.Decimal {
	return q.Subtotal().
		Add(decimal.NewFromFloat(q.TravelCost)).
		Add(decimal.NewFromFloat(q.Tax)).
		Sub(decimal.NewFromFloat(q.Discount))
}
