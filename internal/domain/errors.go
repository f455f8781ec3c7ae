package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound      = errors.New("recurso não encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrNotConfigured = errors.New("backend não configurado")
	ErrUnavailable   = errors.New("backend indisponível")
)
