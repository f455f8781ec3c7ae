package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
)

// restClient fala o protocolo PostgREST: /rest/v1/<coleção> com filtros e
// ordenação em query string, payloads JSON e `Prefer: return=representation`
// para receber de volta o registro canônico (com id/timestamps do servidor).
//
// Sem retry, sem deduplicação e sem timeout próprio: o contexto do chamador
// governa o ciclo de vida da requisição.
type restClient struct {
	baseURL string
	key     string
	httpc   *http.Client
}

// pgrstError corpo de erro do PostgREST.
type pgrstError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (c *restClient) endpoint(table string, query url.Values) string {
	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do executa a requisição com os headers de autenticação do Supabase e decode
// do erro PostgREST quando o status não é 2xx.
func (c *restClient) do(ctx context.Context, method, urlStr string, body []byte, prefer string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return nil, fmt.Errorf("montar requisição: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: ler resposta: %v", domain.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var perr pgrstError
		if jsonErr := json.Unmarshal(data, &perr); jsonErr == nil && perr.Message != "" {
			if resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, perr.Message)
			}
			return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUnavailable, resp.StatusCode, perr.Message)
		}
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}

// selectAll busca todos os registros da coleção na ordem pedida e decodifica
// em out (slice de rows).
func (c *restClient) selectAll(ctx context.Context, table, order string, out any) error {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", order)
	data, err := c.do(ctx, http.MethodGet, c.endpoint(table, q), nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar %s: %w", table, err)
	}
	return nil
}

// insert cria um registro e devolve o corpo da representação retornada
// (array JSON com o registro completo).
func (c *restClient) insert(ctx context.Context, table string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("codificar %s: %w", table, err)
	}
	return c.do(ctx, http.MethodPost, c.endpoint(table, nil), body, "return=representation")
}

// patchByID aplica uma atualização parcial filtrando por id e devolve a
// representação. Resultado vazio significa id inexistente.
func (c *restClient) patchByID(ctx context.Context, table, id string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("codificar %s: %w", table, err)
	}
	q := url.Values{}
	q.Set("id", "eq."+id)
	return c.do(ctx, http.MethodPatch, c.endpoint(table, q), body, "return=representation")
}

// deleteByID remove o registro com o id dado. O contrato do backend não
// garante idempotência: id inexistente é condição de erro, detectada pela
// representação vazia.
func (c *restClient) deleteByID(ctx context.Context, table, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	data, err := c.do(ctx, http.MethodDelete, c.endpoint(table, q), nil, "return=representation")
	if err != nil {
		return err
	}
	if emptyResult(data) {
		return fmt.Errorf("%w: %s id %s", domain.ErrNotFound, table, id)
	}
	return nil
}

// firstRow decodifica a representação (array) e devolve ErrNotFound se vazia.
func firstRow(table string, data []byte, out any) error {
	raw := []json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decodificar %s: %w", table, err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, table)
	}
	if err := json.Unmarshal(raw[0], out); err != nil {
		return fmt.Errorf("decodificar %s: %w", table, err)
	}
	return nil
}

func emptyResult(data []byte) bool {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return false
	}
	return len(raw) == 0
}
