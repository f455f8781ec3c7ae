package supabase

import (
	"context"
	"time"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementação remota de ServiceRepository (coleção "services").
type ServiceRepo struct {
	conn *Connector
}

// NewServiceRepository constrói o adaptador.
func NewServiceRepository(conn *Connector) *ServiceRepo {
	return &ServiceRepo{conn: conn}
}

type serviceRow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r serviceRow) toEntity() entity.Service {
	return entity.Service{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Unit:        r.Unit,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type serviceInsert struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
}

type servicePatchRow struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	BasePrice   *float64 `json:"base_price,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
}

// ListAll busca o catálogo completo ordenado por nome.
func (r *ServiceRepo) ListAll(ctx context.Context) ([]entity.Service, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	var rows []serviceRow
	if err := rest.selectAll(ctx, "services", "name.asc", &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Service, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Create persiste um novo serviço e devolve o registro completo armazenado.
func (r *ServiceRepo) Create(ctx context.Context, in repository.ServiceInput) (*entity.Service, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	data, err := rest.insert(ctx, "services", serviceInsert{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Unit:        in.Unit,
	})
	if err != nil {
		return nil, err
	}
	var row serviceRow
	if err := firstRow("services", data, &row); err != nil {
		return nil, err
	}
	s := row.toEntity()
	return &s, nil
}

// Update aplica um patch parcial e devolve o registro atualizado completo.
func (r *ServiceRepo) Update(ctx context.Context, id string, patch repository.ServicePatch) (*entity.Service, error) {
	rest, err := r.conn.client()
	if err != nil {
		return nil, err
	}
	data, err := rest.patchByID(ctx, "services", id, servicePatchRow{
		Name:        patch.Name,
		Description: patch.Description,
		BasePrice:   patch.BasePrice,
		Unit:        patch.Unit,
	})
	if err != nil {
		return nil, err
	}
	var row serviceRow
	if err := firstRow("services", data, &row); err != nil {
		return nil, err
	}
	s := row.toEntity()
	return &s, nil
}

// Delete remove o serviço; id inexistente devolve domain.ErrNotFound.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	rest, err := r.conn.client()
	if err != nil {
		return err
	}
	return rest.deleteByID(ctx, "services", id)
}
