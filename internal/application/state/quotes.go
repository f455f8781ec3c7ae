package state

import (
	"context"
	"fmt"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

// Quotes devolve a cópia atual dos orçamentos e seu status.
func (c *Controller) Quotes() ([]dto.QuoteResponse, Status) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dto.QuoteResponse, 0, len(c.quotes))
	for _, q := range c.quotes {
		out = append(out, toQuoteResponse(q))
	}
	return out, c.quoteStatus
}

// CreateQuote valida (cliente e data obrigatórios, status e valores
// aceitáveis), persiste e aplica o registro canônico ao cache.
func (c *Controller) CreateQuote(ctx context.Context, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.ClientID == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	status := entity.QuoteStatus(in.Status)
	if in.Status == "" {
		status = entity.QuoteDraft
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.TravelCost < 0 || in.Tax < 0 || in.Discount < 0 {
		return nil, domain.ErrInvalidInput
	}
	items, err := toQuoteItems(in.Items)
	if err != nil {
		return nil, err
	}

	created, err := c.quoteRepo.Create(ctx, repository.QuoteInput{
		ClientID:   in.ClientID,
		Date:       in.Date,
		Items:      items,
		TravelCost: in.TravelCost,
		Tax:        in.Tax,
		Discount:   in.Discount,
		Status:     status,
		Notes:      in.Notes,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.quotes = append(c.quotes, *created)
	sortQuotes(c.quotes)
	c.mu.Unlock()

	resp := toQuoteResponse(*created)
	return &resp, nil
}

// UpdateQuote aplica o patch e substitui a entrada local; zera o slot de
// edição no save.
func (c *Controller) UpdateQuote(ctx context.Context, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	var status *entity.QuoteStatus
	if in.Status != nil {
		s := entity.QuoteStatus(*in.Status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		status = &s
	}
	for _, v := range []*float64{in.TravelCost, in.Tax, in.Discount} {
		if v != nil && *v < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	var items *[]entity.QuoteItem
	if in.Items != nil {
		list, err := toQuoteItems(*in.Items)
		if err != nil {
			return nil, err
		}
		items = &list
	}

	updated, err := c.quoteRepo.Update(ctx, id, repository.QuotePatch{
		ClientID:   in.ClientID,
		Date:       in.Date,
		Items:      items,
		TravelCost: in.TravelCost,
		Tax:        in.Tax,
		Discount:   in.Discount,
		Status:     status,
		Notes:      in.Notes,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for i := range c.quotes {
		if c.quotes[i].ID == id {
			c.quotes[i] = *updated
			break
		}
	}
	sortQuotes(c.quotes)
	if c.editingQuote == id {
		c.editingQuote = ""
	}
	c.mu.Unlock()

	resp := toQuoteResponse(*updated)
	return &resp, nil
}

// DeleteQuote remove no backend e, confirmado, tira do cache.
func (c *Controller) DeleteQuote(ctx context.Context, id string) error {
	if err := c.quoteRepo.Delete(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.quotes {
		if c.quotes[i].ID == id {
			c.quotes = append(c.quotes[:i], c.quotes[i+1:]...)
			break
		}
	}
	if c.editingQuote == id {
		c.editingQuote = ""
	}
	c.mu.Unlock()
	return nil
}

// StartEditQuote marca o orçamento como em edição.
func (c *Controller) StartEditQuote(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.quotes {
		if c.quotes[i].ID == id {
			c.editingQuote = id
			return nil
		}
	}
	return domain.ErrNotFound
}

// CancelEditQuote zera o slot de edição de orçamento.
func (c *Controller) CancelEditQuote() {
	c.mu.Lock()
	c.editingQuote = ""
	c.mu.Unlock()
}

// EditingQuote devolve o id em edição ("" = nenhum).
func (c *Controller) EditingQuote() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editingQuote
}

// QuotePDF resolve orçamento, cliente e nomes de serviço no estado em
// memória e delega a impressão ao gerador.
func (c *Controller) QuotePDF(ctx context.Context, id string) ([]byte, error) {
	c.mu.RLock()
	var quote *entity.Quote
	for i := range c.quotes {
		if c.quotes[i].ID == id {
			q := c.quotes[i]
			quote = &q
			break
		}
	}
	if quote == nil {
		c.mu.RUnlock()
		return nil, fmt.Errorf("%w: orçamento %s", domain.ErrNotFound, id)
	}

	var client *entity.Client
	for i := range c.clients {
		if c.clients[i].ID == quote.ClientID {
			cl := c.clients[i]
			client = &cl
			break
		}
	}

	serviceByID := make(map[string]entity.Service, len(c.services))
	for _, s := range c.services {
		serviceByID[s.ID] = s
	}
	c.mu.RUnlock()

	if client == nil {
		return nil, fmt.Errorf("%w: cliente do orçamento %s", domain.ErrNotFound, id)
	}

	lines := make([]QuoteLine, 0, len(quote.Items))
	for _, it := range quote.Items {
		desc := "Serviço removido do catálogo"
		unit := ""
		if s, ok := serviceByID[it.ServiceID]; ok {
			desc = s.Name
			unit = s.Unit
		}
		lines = append(lines, QuoteLine{
			Description: desc,
			Unit:        unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	return c.pdf.GenerateQuotePDF(ctx, quote, client, lines)
}

func toQuoteItems(items []dto.QuoteItemDTO) ([]entity.QuoteItem, error) {
	out := make([]entity.QuoteItem, 0, len(items))
	for _, it := range items {
		if it.ServiceID == "" || it.Quantity < 0 || it.UnitPrice < 0 {
			return nil, domain.ErrInvalidInput
		}
		out = append(out, entity.QuoteItem{
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out, nil
}

func toQuoteResponse(q entity.Quote) dto.QuoteResponse {
	items := make([]dto.QuoteItemDTO, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.QuoteItemDTO{
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	subtotal, _ := q.Subtotal().Round(2).Float64()
	total, _ := q.Total().Round(2).Float64()
	return dto.QuoteResponse{
		ID:         q.ID,
		ClientID:   q.ClientID,
		Date:       q.Date,
		Items:      items,
		TravelCost: q.TravelCost,
		Tax:        q.Tax,
		Discount:   q.Discount,
		Subtotal:   subtotal,
		Total:      total,
		Status:     string(q.Status),
		Notes:      q.Notes,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
