package supabase

import (
	"context"
	"time"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação remota de ClientRepository (coleção "clients").
type ClientRepo struct {
	conn *Connector
}

// NewClientRepository constrói o adaptador.
func NewClientRepository(conn *Connector) *ClientRepo {
	return &ClientRepo{conn: conn}
}

// clientRow linha da coleção como o PostgREST a serializa.
type clientRow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r clientRow) toEntity() entity.Client {
	return entity.Client{
		ID:        r.ID,
		Name:      r.Name,
		Company:   r.Company,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		City:      r.City,
		Type:      entity.ClientType(r.Type),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// clientInsert payload de criação; id/timestamps ficam por conta do servidor.
type clientInsert struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Type    string `json:"type"`
	Notes   string `json:"notes,omitempty"`
}

// clientPatchRow payload de atualização parcial; nil não é enviado.
type clientPatchRow struct {
	Name    *string `json:"name,omitempty"`
	Company *string `json:"company,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Type    *string `json:"type,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// ListAll busca todos os clientes ordenados por nome.
func (r *ClientRepo) ListAll(ctx context.Context) ([]entity.Client, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	var rows []clientRow
	if err := rest.selectAll(ctx, "clients", "name.asc", &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Create persiste um novo cliente e devolve o registro completo armazenado.
func (r *ClientRepo) Create(ctx context.Context, in repository.ClientInput) (*entity.Client, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	data, err := rest.insert(ctx, "clients", clientInsert{
		Name:    in.Name,
		Company: in.Company,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		Type:    string(in.Type),
		Notes:   in.Notes,
	})
	if err != nil {
		return nil, err
	}
	var row clientRow
	if err := firstRow("clients", data, &row); err != nil {
		return nil, err
	}
	c := row.toEntity()
	return &c, nil
}

// Update aplica um patch parcial e devolve o registro atualizado completo.
func (r *ClientRepo) Update(ctx context.Context, id string, patch repository.ClientPatch) (*entity.Client, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	var typeStr *string
	if patch.Type != nil {
		s := string(*patch.Type)
		typeStr = &s
	}
	data, err := rest.patchByID(ctx, "clients", id, clientPatchRow{
		Name:    patch.Name,
		Company: patch.Company,
		Phone:   patch.Phone,
		Email:   patch.Email,
		Address: patch.Address,
		City:    patch.City,
		Type:    typeStr,
		Notes:   patch.Notes,
	})
	if err != nil {
		return nil, err
	}
	var row clientRow
	if err := firstRow("clients", data, &row); err != nil {
		return nil, err
	}
	c := row.toEntity()
	return &c, nil
}

// Delete remove o cliente; id inexistente devolve domain.ErrNotFound.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	rest, err := r.conn.client()
	if err != nil {
		return err
	}
	return rest.deleteByID(ctx, "clients", id)
}
