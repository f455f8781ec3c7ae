// seed popula o catálogo de serviços inicial da empresa no backend remoto.
//
// Uso: go run ./cmd/seed
// Requer SUPABASE_URL e SUPABASE_ANON_KEY configurados; aborta se o backend
// não estiver acessível. Idempotência é responsabilidade do operador: rodar
// duas vezes duplica o catálogo.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/infrastructure/supabase"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/pkg/config"
)

var catalog = []repository.ServiceInput{
	{
		Name:        "Hidrossemeadura",
		Description: "Aplicação de sementes, fertilizantes e mulch via jato hidráulico",
		BasePrice:   15.00,
		Unit:        "m²",
	},
	{
		Name:        "Revegetação de Talude",
		Description: "Recuperação vegetal de taludes de corte e aterro",
		BasePrice:   25.00,
		Unit:        "m²",
	},
	{
		Name:        "Controle de Erosão",
		Description: "Instalação de mantas e estruturas de contenção de erosão",
		BasePrice:   20.00,
		Unit:        "m²",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	conn := supabase.NewConnector(cfg.Supabase, nil)
	if !conn.Configured() {
		fmt.Fprintln(os.Stderr, "SUPABASE_URL/SUPABASE_ANON_KEY ausentes ou inválidos")
		os.Exit(1)
	}

	repo := supabase.NewServiceRepository(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, in := range catalog {
		created, err := repo.Create(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "criar serviço %q: %v\n", in.Name, err)
			os.Exit(1)
		}
		fmt.Printf("criado: %s (%s) R$ %.2f/%s\n", created.Name, created.ID, created.BasePrice, created.Unit)
	}
}
