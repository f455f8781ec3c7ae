package repository

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
)

// TravelExpenseInput campos de criação de viático.
type TravelExpenseInput struct {
	Date        string
	Destination string
	DistanceKM  float64
	Fuel        float64
	Toll        float64
	Meals       float64
	Lodging     float64
	Other       float64
	Notes       string
}

// TravelExpensePatch atualização parcial; campos nil não são enviados.
type TravelExpensePatch struct {
	Date        *string
	Destination *string
	DistanceKM  *float64
	Fuel        *float64
	Toll        *float64
	Meals       *float64
	Lodging     *float64
	Other       *float64
	Notes       *string
}

// TravelExpenseRepository define a porta de persistência remota para
// TravelExpense. ListAll devolve os registros por data decrescente.
type TravelExpenseRepository interface {
	ListAll(ctx context.Context) ([]entity.TravelExpense, error)
	Create(ctx context.Context, in TravelExpenseInput) (*entity.TravelExpense, error)
	Update(ctx context.Context, id string, patch TravelExpensePatch) (*entity.TravelExpense, error)
	Delete(ctx context.Context, id string) error
}
