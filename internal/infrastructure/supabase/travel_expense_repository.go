package supabase

import (
	"context"
	"time"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

var _ repository.TravelExpenseRepository = (*TravelExpenseRepo)(nil)

// TravelExpenseRepo implementação remota de TravelExpenseRepository
// (coleção "travel_expenses").
type TravelExpenseRepo struct {
	conn *Connector
}

// NewTravelExpenseRepository constrói o adaptador.
func NewTravelExpenseRepository(conn *Connector) *TravelExpenseRepo {
	return &TravelExpenseRepo{conn: conn}
}

type travelExpenseRow struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Destination string    `json:"destination"`
	DistanceKM  float64   `json:"distance_km"`
	Fuel        float64   `json:"fuel"`
	Toll        float64   `json:"toll"`
	Meals       float64   `json:"meals"`
	Lodging     float64   `json:"lodging"`
	Other       float64   `json:"other"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r travelExpenseRow) toEntity() entity.TravelExpense {
	return entity.TravelExpense{
		ID:          r.ID,
		Date:        r.Date,
		Destination: r.Destination,
		DistanceKM:  r.DistanceKM,
		Fuel:        r.Fuel,
		Toll:        r.Toll,
		Meals:       r.Meals,
		Lodging:     r.Lodging,
		Other:       r.Other,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type travelExpenseInsert struct {
	Date        string  `json:"date"`
	Destination string  `json:"destination"`
	DistanceKM  float64 `json:"distance_km"`
	Fuel        float64 `json:"fuel"`
	Toll        float64 `json:"toll"`
	Meals       float64 `json:"meals"`
	Lodging     float64 `json:"lodging"`
	Other       float64 `json:"other"`
	Notes       string  `json:"notes,omitempty"`
}

type travelExpensePatchRow struct {
	Date        *string  `json:"date,omitempty"`
	Destination *string  `json:"destination,omitempty"`
	DistanceKM  *float64 `json:"distance_km,omitempty"`
	Fuel        *float64 `json:"fuel,omitempty"`
	Toll        *float64 `json:"toll,omitempty"`
	Meals       *float64 `json:"meals,omitempty"`
	Lodging     *float64 `json:"lodging,omitempty"`
	Other       *float64 `json:"other,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// ListAll busca todos os viáticos por data decrescente (mais recentes primeiro).
func (r *TravelExpenseRepo) ListAll(ctx context.Context) ([]entity.TravelExpense, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	var rows []travelExpenseRow
	if err := rest.selectAll(ctx, "travel_expenses", "date.desc", &rows); err != nil {
		return nil, err
	}
	out := make([]entity.TravelExpense, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Create persiste um novo viático e devolve o registro completo armazenado.
func (r *TravelExpenseRepo) Create(ctx context.Context, in repository.TravelExpenseInput) (*entity.TravelExpense, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	data, err := rest.insert(ctx, "travel_expenses", travelExpenseInsert{
		Date:        in.Date,
		Destination: in.Destination,
		DistanceKM:  in.DistanceKM,
		Fuel:        in.Fuel,
		Toll:        in.Toll,
		Meals:       in.Meals,
		Lodging:     in.Lodging,
		Other:       in.Other,
		Notes:       in.Notes,
	})
	if err != nil {
		return nil, err
	}
	var row travelExpenseRow
	if err := firstRow("travel_expenses", data, &row); err != nil {
		return nil, err
	}
	e := row.toEntity()
	return &e, nil
}

// Update aplica um patch parcial e devolve o registro atualizado completo.
func (r *TravelExpenseRepo) Update(ctx context.Context, id string, patch repository.TravelExpensePatch) (*entity.TravelExpense, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	data, err := rest.patchByID(ctx, "travel_expenses", id, travelExpensePatchRow{
		Date:        patch.Date,
		Destination: patch.Destination,
		DistanceKM:  patch.DistanceKM,
		Fuel:        patch.Fuel,
		Toll:        patch.Toll,
		Meals:       patch.Meals,
		Lodging:     patch.Lodging,
		Other:       patch.Other,
		Notes:       patch.Notes,
	})
	if err != nil {
		return nil, err
	}
	var row travelExpenseRow
	if err := firstRow("travel_expenses", data, &row); err != nil {
		return nil, err
	}
	e := row.toEntity()
	return &e, nil
}

// Delete remove o viático; id inexistente devolve domain.ErrNotFound.
func (r *TravelExpenseRepo) Delete(ctx context.Context, id string) error {
	rest, err := r.conn.client()
	if err != nil {
		return err
	}
	return rest.deleteByID(ctx, "travel_expenses", id)
}
