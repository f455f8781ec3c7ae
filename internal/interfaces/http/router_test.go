package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
	apphttp "github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/interfaces/http"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de repositório (o servidor atribui id e timestamps)
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)

type memClientRepo struct {
	seq  int
	rows []entity.Client
	err  error
}

func (m *memClientRepo) ListAll(context.Context) ([]entity.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]entity.Client(nil), m.rows...), nil
}

func (m *memClientRepo) Create(_ context.Context, in repository.ClientInput) (*entity.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.seq++
	cl := entity.Client{
		ID: fmt.Sprintf("client-%d", m.seq), Name: in.Name, Phone: in.Phone,
		Type: in.Type, CreatedAt: testNow, UpdatedAt: testNow,
	}
	m.rows = append(m.rows, cl)
	return &cl, nil
}

func (m *memClientRepo) Update(_ context.Context, id string, patch repository.ClientPatch) (*entity.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.rows {
		if m.rows[i].ID == id {
			if patch.Name != nil {
				m.rows[i].Name = *patch.Name
			}
			if patch.Phone != nil {
				m.rows[i].Phone = *patch.Phone
			}
			cl := m.rows[i]
			return &cl, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memClientRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memServiceRepo struct {
	seq  int
	rows []entity.Service
}

func (m *memServiceRepo) ListAll(context.Context) ([]entity.Service, error) {
	return append([]entity.Service(nil), m.rows...), nil
}

func (m *memServiceRepo) Create(_ context.Context, in repository.ServiceInput) (*entity.Service, error) {
	m.seq++
	s := entity.Service{
		ID: fmt.Sprintf("service-%d", m.seq), Name: in.Name, BasePrice: in.BasePrice,
		Unit: in.Unit, CreatedAt: testNow, UpdatedAt: testNow,
	}
	m.rows = append(m.rows, s)
	return &s, nil
}

func (m *memServiceRepo) Update(context.Context, string, repository.ServicePatch) (*entity.Service, error) {
	return nil, domain.ErrNotFound
}

func (m *memServiceRepo) Delete(context.Context, string) error { return domain.ErrNotFound }

type memExpenseRepo struct {
	seq  int
	rows []entity.TravelExpense
}

func (m *memExpenseRepo) ListAll(context.Context) ([]entity.TravelExpense, error) {
	return append([]entity.TravelExpense(nil), m.rows...), nil
}

func (m *memExpenseRepo) Create(_ context.Context, in repository.TravelExpenseInput) (*entity.TravelExpense, error) {
	m.seq++
	e := entity.TravelExpense{
		ID: fmt.Sprintf("expense-%d", m.seq), Date: in.Date, Destination: in.Destination,
		Fuel: in.Fuel, Toll: in.Toll, Meals: in.Meals, Lodging: in.Lodging, Other: in.Other,
		CreatedAt: testNow, UpdatedAt: testNow,
	}
	m.rows = append(m.rows, e)
	return &e, nil
}

func (m *memExpenseRepo) Update(context.Context, string, repository.TravelExpensePatch) (*entity.TravelExpense, error) {
	return nil, domain.ErrNotFound
}

func (m *memExpenseRepo) Delete(context.Context, string) error { return domain.ErrNotFound }

type memQuoteRepo struct {
	seq  int
	rows []entity.Quote
}

func (m *memQuoteRepo) ListAll(context.Context) ([]entity.Quote, error) {
	return append([]entity.Quote(nil), m.rows...), nil
}

func (m *memQuoteRepo) Create(_ context.Context, in repository.QuoteInput) (*entity.Quote, error) {
	m.seq++
	q := entity.Quote{
		ID: fmt.Sprintf("quote-%d", m.seq), ClientID: in.ClientID, Date: in.Date,
		Items: in.Items, TravelCost: in.TravelCost, Tax: in.Tax, Discount: in.Discount,
		Status: in.Status, CreatedAt: testNow, UpdatedAt: testNow,
	}
	m.rows = append(m.rows, q)
	return &q, nil
}

func (m *memQuoteRepo) Update(context.Context, string, repository.QuotePatch) (*entity.Quote, error) {
	return nil, domain.ErrNotFound
}

func (m *memQuoteRepo) Delete(context.Context, string) error { return domain.ErrNotFound }

type stubPDF struct{}

func (stubPDF) GenerateQuotePDF(context.Context, *entity.Quote, *entity.Client, []state.QuoteLine) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// buildTestApp monta a aplicação Fiber completa sobre repositórios em memória.
func buildTestApp(t *testing.T, clientRepo *memClientRepo) *fiber.App {
	t.Helper()
	ctrl := state.NewController(state.Deps{
		Log:      logger.New(logger.Config{Env: "test", Level: "error"}),
		Clients:  clientRepo,
		Services: &memServiceRepo{},
		Expenses: &memExpenseRepo{},
		Quotes:   &memQuoteRepo{},
		QuotePDF: stubPDF{},
	})
	ctrl.Load(context.Background())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Ctrl: ctrl})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de clientes via HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_CriarEListarClientes(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{
		"name": "Ana", "phone": "11999990000",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "client-1", body["id"], "o id devolvido é o atribuído pelo servidor")
	assert.Equal(t, "pessoa_fisica", body["type"])

	listResp := doJSON(t, app, http.MethodGet, "/api/clientes", nil)
	defer listResp.Body.Close()

	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	assert.Equal(t, "loaded", listResp.Header.Get("X-Collection-Status"))

	var list []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0]["name"])
}

func TestHTTP_CorpoInvalido_Retorna400(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/clientes", bytes.NewReader([]byte("{nao-e-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_BODY")
}

func TestHTTP_ValidacaoDeDominio_Retorna400(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestHTTP_AtualizarCliente(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	created := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "phone": "1"})
	created.Body.Close()

	resp := doJSON(t, app, http.MethodPut, "/api/clientes/client-1", map[string]any{"name": "Ana Paula"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Ana Paula", body["name"])
}

func TestHTTP_RemoverCliente(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	created := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "phone": "1"})
	created.Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/api/clientes/client-1", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/clientes/client-1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "remover de novo deve dar 404")
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "NOT_FOUND")
}

func TestHTTP_BackendNaoConfigurado_Retorna503(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{err: domain.ErrNotConfigured})

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "phone": "1"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "NOT_CONFIGURED")
}

func TestHTTP_BackendIndisponivel_Retorna502(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{err: domain.ErrUnavailable})

	list := doJSON(t, app, http.MethodGet, "/api/clientes", nil)
	list.Body.Close()
	assert.Equal(t, "degraded", list.Header.Get("X-Collection-Status"),
		"carga falhada marca a coleção como degradada, mas a leitura segue 200")
	assert.Equal(t, http.StatusOK, list.StatusCode)

	resp := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "phone": "1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "UPSTREAM")
}

func TestHTTP_AtualizarInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	resp := doJSON(t, app, http.MethodPut, "/api/clientes/fantasma", map[string]any{"name": "X"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Slots de edição
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_FluxoDeEdicao(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	created := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "phone": "1"})
	created.Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/clientes/client-1/edicao", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "client-1", body["editing"])

	cancel := doJSON(t, app, http.MethodDelete, "/api/clientes/edicao", nil)
	cancel.Body.Close()
	assert.Equal(t, http.StatusNoContent, cancel.StatusCode)
}

func TestHTTP_EditarInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/clientes/fantasma/edicao", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculadora, export, dashboard e PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestHTTP_Calculadora(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	svc := doJSON(t, app, http.MethodPost, "/api/servicos", map[string]any{
		"name": "Hidrossemeadura", "base_price": 15.0, "unit": "m²",
	})
	svc.Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/calculadora", map[string]any{
		"area": 100.0, "service_id": "service-1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, 1500.0, body["service_cost"])
	assert.Equal(t, 1500.0, body["total"])
}

func TestHTTP_Export(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	created := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "phone": "1"})
	created.Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/export", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "verde-oeste-")

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["export_id"])
	clients, ok := body["clients"].([]any)
	require.True(t, ok)
	assert.Len(t, clients, 1)
}

func TestHTTP_Dashboard(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	exp := doJSON(t, app, http.MethodPost, "/api/viaticos", map[string]any{
		"date": "2025-08-10", "destination": "Obra", "fuel": 0.1, "toll": 0.2,
	})
	exp.Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, 1.0, body["travel_expense_count"])

	summary, ok := body["travel_expenses"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.3, summary["grand_total"], "soma exata, sem resíduo de ponto flutuante")
}

func TestHTTP_PDFDoOrcamento(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	client := doJSON(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "phone": "1"})
	client.Body.Close()
	quote := doJSON(t, app, http.MethodPost, "/api/orcamentos", map[string]any{
		"client_id": "client-1", "date": "2025-08-15",
	})
	quote.Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/orcamentos/quote-1/pdf", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "o corpo deve ser um documento PDF")
}

func TestHTTP_PDFDeOrcamentoInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t, &memClientRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/orcamentos/fantasma/pdf", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
