package entity

import "time"

// ClientType distingue pessoa física de pessoa jurídica.
type ClientType string

const (
	ClientIndividual   ClientType = "pessoa_fisica"
	ClientOrganization ClientType = "pessoa_juridica"
)

// Valid informa se o tipo é um dos valores aceitos.
func (t ClientType) Valid() bool {
	return t == ClientIndividual || t == ClientOrganization
}

// Client representa um cliente da empresa.
// Name e Phone são obrigatórios para persistência; o resto é opcional.
type Client struct {
	ID        string
	Name      string
	Company   string
	Phone     string
	Email     string
	Address   string
	City      string
	Type      ClientType
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
