// Package supabase implementa os adaptadores de persistência remota sobre a
// API REST do Supabase (PostgREST). O datastore é um colaborador externo:
// linhas CRUD em quatro coleções, com id e timestamps atribuídos pelo servidor.
package supabase

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/pkg/config"
)

// minKeyLen tamanho mínimo aceito para a chave de acesso.
const minKeyLen = 20

// Connector resolve e valida as credenciais do backend remoto no arranque.
// Quando a validação falha, o conector fica na variante "não configurado":
// Configured() devolve false e toda operação falha com domain.ErrNotConfigured
// em vez de tentar a rede.
type Connector struct {
	rest *restClient // nil na variante não configurada
}

// NewConnector valida URL e chave e constrói o conector. httpc nil usa
// http.DefaultClient. Regras: a URL deve parsear, usar https e apontar para
// um domínio Supabase; a chave deve ter mais de minKeyLen caracteres.
func NewConnector(cfg config.SupabaseConfig, httpc *http.Client) *Connector {
	if !validURL(cfg.URL) || len(cfg.AnonKey) <= minKeyLen {
		return &Connector{}
	}
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Connector{
		rest: &restClient{
			baseURL: strings.TrimRight(cfg.URL, "/"),
			key:     cfg.AnonKey,
			httpc:   httpc,
		},
	}
}

// Configured informa se existe conexão viva com o backend.
func (c *Connector) Configured() bool {
	return c.rest != nil
}

// client devolve o cliente REST ou ErrNotConfigured na variante ausente.
func (c *Connector) client() (*restClient, error) {
	if c.rest == nil {
		return nil, domain.ErrNotConfigured
	}
	return c.rest, nil
}

func validURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && strings.Contains(u.Hostname(), "supabase")
}
