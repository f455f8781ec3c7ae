package entity

import "time"

// Service é um item do catálogo de serviços (hidrossemeadura, revegetação etc.).
// BasePrice é o preço unitário; Unit é o rótulo livre da unidade (m², km, h...).
type Service struct {
	ID          string
	Name        string
	Description string
	BasePrice   float64 // invariante: >= 0
	Unit        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
