// Package state implementa o controlador da aplicação: dono das cópias em
// memória das quatro coleções, despacha mutações pelos repositórios e
// reconcilia o cache local com o registro canônico devolvido pelo servidor.
//
// O cache é transitório e possivelmente defasado; toda mutação bem-sucedida
// o sobrescreve com a resposta confirmada do backend (sem otimismo). Em caso
// de erro nenhuma mutação parcial é aplicada localmente.
package state

import (
	"context"
	"sort"
	"sync"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/pkg/logger"
)

// Status estado de carga de uma coleção.
type Status string

const (
	StatusLoading  Status = "loading"
	StatusLoaded   Status = "loaded"
	StatusDegraded Status = "degraded"
)

// Deps dependências do controlador; injetadas na construção, sem singletons.
type Deps struct {
	Log      *logger.Logger
	Clients  repository.ClientRepository
	Services repository.ServiceRepository
	Expenses repository.TravelExpenseRepository
	Quotes   repository.QuoteRepository
	QuotePDF QuotePDFGenerator
}

// Controller estado da aplicação: quatro coleções independentes com status
// {loading, loaded, degraded} e um slot de edição opcional por tipo de
// entidade (zerado em save/cancel).
type Controller struct {
	log *logger.Logger

	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	expenseRepo repository.TravelExpenseRepository
	quoteRepo   repository.QuoteRepository
	pdf         QuotePDFGenerator

	mu       sync.RWMutex
	clients  []entity.Client
	services []entity.Service
	expenses []entity.TravelExpense
	quotes   []entity.Quote

	clientStatus  Status
	serviceStatus Status
	expenseStatus Status
	quoteStatus   Status

	// Slots de edição independentes, um por tipo ("" = nenhum em edição).
	editingClient  string
	editingService string
	editingExpense string
	editingQuote   string
}

// NewController constrói o controlador com as coleções em loading.
func NewController(deps Deps) *Controller {
	return &Controller{
		log:           deps.Log,
		clientRepo:    deps.Clients,
		serviceRepo:   deps.Services,
		expenseRepo:   deps.Expenses,
		quoteRepo:     deps.Quotes,
		pdf:           deps.QuotePDF,
		clientStatus:  StatusLoading,
		serviceStatus: StatusLoading,
		expenseStatus: StatusLoading,
		quoteStatus:   StatusLoading,
	}
}

// Load dispara as quatro buscas iniciais em paralelo e espera todas
// resolverem antes de devolver. Falha de uma coleção não bloqueia as outras:
// a coleção fica vazia e marcada como degradada (modo somente leitura do que
// já se tem), e a aplicação segue utilizável.
func (c *Controller) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		list, err := c.clientRepo.ListAll(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.log.Warn().Err(err).Msg("carga de clientes falhou; coleção degradada")
			c.clients, c.clientStatus = nil, StatusDegraded
			return
		}
		c.clients, c.clientStatus = list, StatusLoaded
	}()

	go func() {
		defer wg.Done()
		list, err := c.serviceRepo.ListAll(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.log.Warn().Err(err).Msg("carga de serviços falhou; coleção degradada")
			c.services, c.serviceStatus = nil, StatusDegraded
			return
		}
		c.services, c.serviceStatus = list, StatusLoaded
	}()

	go func() {
		defer wg.Done()
		list, err := c.expenseRepo.ListAll(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.log.Warn().Err(err).Msg("carga de viáticos falhou; coleção degradada")
			c.expenses, c.expenseStatus = nil, StatusDegraded
			return
		}
		c.expenses, c.expenseStatus = list, StatusLoaded
	}()

	go func() {
		defer wg.Done()
		list, err := c.quoteRepo.ListAll(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.log.Warn().Err(err).Msg("carga de orçamentos falhou; coleção degradada")
			c.quotes, c.quoteStatus = nil, StatusDegraded
			return
		}
		c.quotes, c.quoteStatus = list, StatusLoaded
	}()

	wg.Wait()
}

// ── ordenação local (espelha a ordenação do listAll remoto) ──────────────────

func sortClients(list []entity.Client) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func sortServices(list []entity.Service) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func sortExpenses(list []entity.TravelExpense) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date > list[j].Date })
}

func sortQuotes(list []entity.Quote) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date > list[j].Date })
}
