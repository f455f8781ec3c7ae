package state

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

// TravelExpenses devolve a cópia atual dos viáticos e seu status.
func (c *Controller) TravelExpenses() ([]dto.TravelExpenseResponse, Status) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dto.TravelExpenseResponse, 0, len(c.expenses))
	for _, e := range c.expenses {
		out = append(out, toTravelExpenseResponse(e))
	}
	return out, c.expenseStatus
}

// CreateTravelExpense valida (componentes não negativos, data e destino
// obrigatórios), persiste e aplica o registro canônico ao cache.
func (c *Controller) CreateTravelExpense(ctx context.Context, in dto.CreateTravelExpenseRequest) (*dto.TravelExpenseResponse, error) {
	if in.Date == "" || in.Destination == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Fuel < 0 || in.Toll < 0 || in.Meals < 0 || in.Lodging < 0 || in.Other < 0 || in.DistanceKM < 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := c.expenseRepo.Create(ctx, repository.TravelExpenseInput{
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

	c.mu.Lock()
	c.expenses = append(c.expenses, *created)
	sortExpenses(c.expenses)
	c.mu.Unlock()

	resp := toTravelExpenseResponse(*created)
	return &resp, nil
}

// UpdateTravelExpense aplica o patch e substitui a entrada local; zera o
// slot de edição no save.
func (c *Controller) UpdateTravelExpense(ctx context.Context, id string, in dto.UpdateTravelExpenseRequest) (*dto.TravelExpenseResponse, error) {
	for _, v := range []*float64{in.DistanceKM, in.Fuel, in.Toll, in.Meals, in.Lodging, in.Other} {
		if v != nil && *v < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Date != nil && *in.Date == "" {
		return nil, domain.ErrInvalidInput
	}

	updated, err := c.expenseRepo.Update(ctx, id, repository.TravelExpensePatch{
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

	c.mu.Lock()
	for i := range c.expenses {
		if c.expenses[i].ID == id {
			c.expenses[i] = *updated
			break
		}
	}
	sortExpenses(c.expenses)
	if c.editingExpense == id {
		c.editingExpense = ""
	}
	c.mu.Unlock()

	resp := toTravelExpenseResponse(*updated)
	return &resp, nil
}

// DeleteTravelExpense remove no backend e, confirmado, tira do cache.
func (c *Controller) DeleteTravelExpense(ctx context.Context, id string) error {
	if err := c.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.expenses {
		if c.expenses[i].ID == id {
			c.expenses = append(c.expenses[:i], c.expenses[i+1:]...)
			break
		}
	}
	if c.editingExpense == id {
		c.editingExpense = ""
	}
	c.mu.Unlock()
	return nil
}

// StartEditTravelExpense marca o viático como em edição.
func (c *Controller) StartEditTravelExpense(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.expenses {
		if c.expenses[i].ID == id {
			c.editingExpense = id
			return nil
		}
	}
	return domain.ErrNotFound
}

// CancelEditTravelExpense zera o slot de edição de viático.
func (c *Controller) CancelEditTravelExpense() {
	c.mu.Lock()
	c.editingExpense = ""
	c.mu.Unlock()
}

// EditingTravelExpense devolve o id em edição ("" = nenhum).
func (c *Controller) EditingTravelExpense() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editingExpense
}

func toTravelExpenseResponse(e entity.TravelExpense) dto.TravelExpenseResponse {
	total, _ := e.Total().Round(2).Float64()
	return dto.TravelExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		Destination: e.Destination,
		DistanceKM:  e.DistanceKM,
		Fuel:        e.Fuel,
		Toll:        e.Toll,
		Meals:       e.Meals,
		Lodging:     e.Lodging,
		Other:       e.Other,
		Total:       total,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
