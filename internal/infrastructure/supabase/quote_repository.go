package supabase

import (
	"context"
	"time"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementação remota de QuoteRepository (coleção "quotes").
// As linhas do orçamento vivem numa coluna jsonb, não numa tabela filha.
type QuoteRepo struct {
	conn *Connector
}

// NewQuoteRepository constrói o adaptador.
func NewQuoteRepository(conn *Connector) *QuoteRepo {
	return &QuoteRepo{conn: conn}
}

type quoteItemRow struct {
	ServiceID string  `json:"service_id"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type quoteRow struct {
	ID         string         `json:"id"`
	ClientID   string         `json:"client_id"`
	Date       string         `json:"date"`
	Items      []quoteItemRow `json:"items"`
	TravelCost float64        `json:"travel_cost"`
	Tax        float64        `json:"tax"`
	Discount   float64        `json:"discount"`
	Status     string         `json:"status"`
	Notes      string         `json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (r quoteRow) toEntity() entity.Quote {
	items := make([]entity.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.QuoteItem{
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return entity.Quote{
		ID:         r.ID,
		ClientID:   r.ClientID,
		Date:       r.Date,
		Items:      items,
		TravelCost: r.TravelCost,
		Tax:        r.Tax,
		Discount:   r.Discount,
		Status:     entity.QuoteStatus(r.Status),
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toItemRows(items []entity.QuoteItem) []quoteItemRow {
	rows := make([]quoteItemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, quoteItemRow{
			ServiceID: it.ServiceID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return rows
}

type quoteInsert struct {
	ClientID   string         `json:"client_id"`
	Date       string         `json:"date"`
	Items      []quoteItemRow `json:"items"`
	TravelCost float64        `json:"travel_cost"`
	Tax        float64        `json:"tax"`
	Discount   float64        `json:"discount"`
	Status     string         `json:"status"`
	Notes      string         `json:"notes,omitempty"`
}

type quotePatchRow struct {
	ClientID   *string         `json:"client_id,omitempty"`
	Date       *string         `json:"date,omitempty"`
	Items      *[]quoteItemRow `json:"items,omitempty"`
	TravelCost *float64        `json:"travel_cost,omitempty"`
	Tax        *float64        `json:"tax,omitempty"`
	Discount   *float64        `json:"discount,omitempty"`
	Status     *string         `json:"status,omitempty"`
	Notes      *string         `json:"notes,omitempty"`
}

// ListAll busca todos os orçamentos por data decrescente.
func (r *QuoteRepo) ListAll(ctx context.Context) ([]entity.Quote, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	var rows []quoteRow
	if err := rest.selectAll(ctx, "quotes", "date.desc", &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Quote, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Create persiste um novo orçamento e devolve o registro completo armazenado.
func (r *QuoteRepo) Create(ctx context.Context, in repository.QuoteInput) (*entity.Quote, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	data, err := rest.insert(ctx, "quotes", quoteInsert{
		ClientID:   in.ClientID,
		Date:       in.Date,
		Items:      toItemRows(in.Items),
		TravelCost: in.TravelCost,
		Tax:        in.Tax,
		Discount:   in.Discount,
		Status:     string(in.Status),
		Notes:      in.Notes,
	})
	if err != nil {
		return nil, err
	}
	var row quoteRow
	if err := firstRow("quotes", data, &row); err != nil {
		return nil, err
	}
	q := row.toEntity()
	return &q, nil
}

// Update aplica um patch parcial e devolve o registro atualizado completo.
// Items, quando presente, substitui a lista inteira de linhas.
func (r *QuoteRepo) Update(ctx context.Context, id string, patch repository.QuotePatch) (*entity.Quote, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	var statusStr *string
	if patch.Status != nil {
		s := string(*patch.Status)
		statusStr = &s
	}
	var items *[]quoteItemRow
	if patch.Items != nil {
		rows := toItemRows(*patch.Items)
		items = &rows
	}
	data, err := rest.patchByID(ctx, "quotes", id, quotePatchRow{
		ClientID:   patch.ClientID,
		Date:       patch.Date,
		Items:      items,
		TravelCost: patch.TravelCost,
		Tax:        patch.Tax,
		Discount:   patch.Discount,
		Status:     statusStr,
		Notes:      patch.Notes,
	})
	if err != nil {
		return nil, err
	}
	var row quoteRow
	if err := firstRow("quotes", data, &row); err != nil {
		return nil, err
	}
	q := row.toEntity()
	return &q, nil
}

// Delete remove o orçamento; id inexistente devolve domain.ErrNotFound.
func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	rest, err := r.conn.client()
	if err != nil {
		return err
	}
	return rest.deleteByID(ctx, "quotes", id)
}
