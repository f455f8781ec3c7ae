package state_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/pkg/logger"
)

// Repositórios em memória para exercitar o controlador sem rede. O servidor
// é a autoridade: Create atribui id e timestamps, como o backend real faz.

var testNow = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

type fakeClientRepo struct {
	mu   sync.Mutex
	seq  int
	rows []entity.Client
	err  error // quando não nil, toda operação falha com este erro
}

func (f *fakeClientRepo) ListAll(context.Context) ([]entity.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Client(nil), f.rows...), nil
}

func (f *fakeClientRepo) Create(_ context.Context, in repository.ClientInput) (*entity.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	cl := entity.Client{
		ID:        fmt.Sprintf("client-%d", f.seq),
		Name:      in.Name,
		Company:   in.Company,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		City:      in.City,
		Type:      in.Type,
		Notes:     in.Notes,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	f.rows = append(f.rows, cl)
	return &cl, nil
}

func (f *fakeClientRepo) Update(_ context.Context, id string, patch repository.ClientPatch) (*entity.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if patch.Name != nil {
			f.rows[i].Name = *patch.Name
		}
		if patch.Company != nil {
			f.rows[i].Company = *patch.Company
		}
		if patch.Phone != nil {
			f.rows[i].Phone = *patch.Phone
		}
		if patch.Email != nil {
			f.rows[i].Email = *patch.Email
		}
		if patch.City != nil {
			f.rows[i].City = *patch.City
		}
		if patch.Type != nil {
			f.rows[i].Type = *patch.Type
		}
		if patch.Notes != nil {
			f.rows[i].Notes = *patch.Notes
		}
		f.rows[i].UpdatedAt = testNow.Add(time.Hour)
		cl := f.rows[i]
		return &cl, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeServiceRepo struct {
	mu   sync.Mutex
	seq  int
	rows []entity.Service
	err  error
}

func (f *fakeServiceRepo) ListAll(context.Context) ([]entity.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Service(nil), f.rows...), nil
}

func (f *fakeServiceRepo) Create(_ context.Context, in repository.ServiceInput) (*entity.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	s := entity.Service{
		ID:          fmt.Sprintf("service-%d", f.seq),
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Unit:        in.Unit,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	f.rows = append(f.rows, s)
	return &s, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, id string, patch repository.ServicePatch) (*entity.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if patch.Name != nil {
			f.rows[i].Name = *patch.Name
		}
		if patch.Description != nil {
			f.rows[i].Description = *patch.Description
		}
		if patch.BasePrice != nil {
			f.rows[i].BasePrice = *patch.BasePrice
		}
		if patch.Unit != nil {
			f.rows[i].Unit = *patch.Unit
		}
		f.rows[i].UpdatedAt = testNow.Add(time.Hour)
		s := f.rows[i]
		return &s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeServiceRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeExpenseRepo struct {
	mu   sync.Mutex
	seq  int
	rows []entity.TravelExpense
	err  error
}

func (f *fakeExpenseRepo) ListAll(context.Context) ([]entity.TravelExpense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.TravelExpense(nil), f.rows...), nil
}

func (f *fakeExpenseRepo) Create(_ context.Context, in repository.TravelExpenseInput) (*entity.TravelExpense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	e := entity.TravelExpense{
		ID:          fmt.Sprintf("expense-%d", f.seq),
		Date:        in.Date,
		Destination: in.Destination,
		DistanceKM:  in.DistanceKM,
		Fuel:        in.Fuel,
		Toll:        in.Toll,
		Meals:       in.Meals,
		Lodging:     in.Lodging,
		Other:       in.Other,
		Notes:       in.Notes,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	f.rows = append(f.rows, e)
	return &e, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, id string, patch repository.TravelExpensePatch) (*entity.TravelExpense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if patch.Date != nil {
			f.rows[i].Date = *patch.Date
		}
		if patch.Destination != nil {
			f.rows[i].Destination = *patch.Destination
		}
		if patch.DistanceKM != nil {
			f.rows[i].DistanceKM = *patch.DistanceKM
		}
		if patch.Fuel != nil {
			f.rows[i].Fuel = *patch.Fuel
		}
		if patch.Toll != nil {
			f.rows[i].Toll = *patch.Toll
		}
		if patch.Meals != nil {
			f.rows[i].Meals = *patch.Meals
		}
		if patch.Lodging != nil {
			f.rows[i].Lodging = *patch.Lodging
		}
		if patch.Other != nil {
			f.rows[i].Other = *patch.Other
		}
		if patch.Notes != nil {
			f.rows[i].Notes = *patch.Notes
		}
		f.rows[i].UpdatedAt = testNow.Add(time.Hour)
		e := f.rows[i]
		return &e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeQuoteRepo struct {
	mu   sync.Mutex
	seq  int
	rows []entity.Quote
	err  error
}

func (f *fakeQuoteRepo) ListAll(context.Context) ([]entity.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Quote(nil), f.rows...), nil
}

func (f *fakeQuoteRepo) Create(_ context.Context, in repository.QuoteInput) (*entity.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	q := entity.Quote{
		ID:         fmt.Sprintf("quote-%d", f.seq),
		ClientID:   in.ClientID,
		Date:       in.Date,
		Items:      append([]entity.QuoteItem(nil), in.Items...),
		TravelCost: in.TravelCost,
		Tax:        in.Tax,
		Discount:   in.Discount,
		Status:     in.Status,
		Notes:      in.Notes,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
	f.rows = append(f.rows, q)
	return &q, nil
}

func (f *fakeQuoteRepo) Update(_ context.Context, id string, patch repository.QuotePatch) (*entity.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if patch.ClientID != nil {
			f.rows[i].ClientID = *patch.ClientID
		}
		if patch.Date != nil {
			f.rows[i].Date = *patch.Date
		}
		if patch.Items != nil {
			f.rows[i].Items = append([]entity.QuoteItem(nil), (*patch.Items)...)
		}
		if patch.TravelCost != nil {
			f.rows[i].TravelCost = *patch.TravelCost
		}
		if patch.Tax != nil {
			f.rows[i].Tax = *patch.Tax
		}
		if patch.Discount != nil {
			f.rows[i].Discount = *patch.Discount
		}
		if patch.Status != nil {
			f.rows[i].Status = *patch.Status
		}
		if patch.Notes != nil {
			f.rows[i].Notes = *patch.Notes
		}
		f.rows[i].UpdatedAt = testNow.Add(time.Hour)
		q := f.rows[i]
		return &q, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakePDF registra o último pedido e devolve bytes reconhecíveis.
type fakePDF struct {
	mu        sync.Mutex
	lastQuote *entity.Quote
	lastLines []state.QuoteLine
}

func (f *fakePDF) GenerateQuotePDF(_ context.Context, q *entity.Quote, _ *entity.Client, lines []state.QuoteLine) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuote = q
	f.lastLines = lines
	return []byte("%PDF-fake"), nil
}

// testEnv agrupa o controlador e os fakes de um cenário.
type testEnv struct {
	ctrl     *state.Controller
	clients  *fakeClientRepo
	services *fakeServiceRepo
	expenses *fakeExpenseRepo
	quotes   *fakeQuoteRepo
	pdf      *fakePDF
}

func newTestEnv() *testEnv {
	env := &testEnv{
		clients:  &fakeClientRepo{},
		services: &fakeServiceRepo{},
		expenses: &fakeExpenseRepo{},
		quotes:   &fakeQuoteRepo{},
		pdf:      &fakePDF{},
	}
	env.ctrl = state.NewController(state.Deps{
		Log:      logger.New(logger.Config{Env: "test", Level: "error"}),
		Clients:  env.clients,
		Services: env.services,
		Expenses: env.expenses,
		Quotes:   env.quotes,
		QuotePDF: env.pdf,
	})
	return env
}
