package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
	infrapdf "github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/infrastructure/pdf"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/infrastructure/supabase"
	httpRouter "github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/interfaces/http"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/pkg/config"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	conn := supabase.NewConnector(cfg.Supabase, nil)
	if !conn.Configured() {
		// Sem backend a aplicação sobe mesmo assim: coleções vazias,
		// escritas recusadas com erro explícito.
		log.Warn().Msg("backend remoto não configurado; operando em modo degradado")
	}

	clientRepo := supabase.NewClientRepository(conn)
	serviceRepo := supabase.NewServiceRepository(conn)
	expenseRepo := supabase.NewTravelExpenseRepository(conn)
	quoteRepo := supabase.NewQuoteRepository(conn)

	pdfGenerator := infrapdf.NewMarotoQuoteGenerator()

	ctrl := state.NewController(state.Deps{
		Log:      log,
		Clients:  clientRepo,
		Services: serviceRepo,
		Expenses: expenseRepo,
		Quotes:   quoteRepo,
		QuotePDF: pdfGenerator,
	})

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	ctrl.Load(loadCtx)
	cancelLoad()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Verde Oeste API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    cfg.App.Name,
			"configured": conn.Configured(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{Ctrl: ctrl})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
