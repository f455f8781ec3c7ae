package state

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

// Services devolve a cópia atual do catálogo e seu status.
func (c *Controller) Services() ([]dto.ServiceResponse, Status) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dto.ServiceResponse, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, toServiceResponse(s))
	}
	return out, c.serviceStatus
}

// CreateService valida (preço base >= 0, nome obrigatório), persiste e
// aplica ao cache o registro canônico.
func (c *Controller) CreateService(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.BasePrice < 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := c.serviceRepo.Create(ctx, repository.ServiceInput{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Unit:        in.Unit,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.services = append(c.services, *created)
	sortServices(c.services)
	c.mu.Unlock()

	resp := toServiceResponse(*created)
	return &resp, nil
}

// UpdateService aplica o patch e substitui a entrada local; zera o slot de
// edição no save.
func (c *Controller) UpdateService(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BasePrice != nil && *in.BasePrice < 0 {
		return nil, domain.ErrInvalidInput
	}

	updated, err := c.serviceRepo.Update(ctx, id, repository.ServicePatch{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Unit:        in.Unit,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for i := range c.services {
		if c.services[i].ID == id {
			c.services[i] = *updated
			break
		}
	}
	sortServices(c.services)
	if c.editingService == id {
		c.editingService = ""
	}
	c.mu.Unlock()

	resp := toServiceResponse(*updated)
	return &resp, nil
}

// DeleteService remove no backend e, confirmado, tira do catálogo local.
func (c *Controller) DeleteService(ctx context.Context, id string) error {
	if err := c.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.services {
		if c.services[i].ID == id {
			c.services = append(c.services[:i], c.services[i+1:]...)
			break
		}
	}
	if c.editingService == id {
		c.editingService = ""
	}
	c.mu.Unlock()
	return nil
}

// StartEditService marca o serviço como em edição.
func (c *Controller) StartEditService(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.services {
		if c.services[i].ID == id {
			c.editingService = id
			return nil
		}
	}
	return domain.ErrNotFound
}

// CancelEditService zera o slot de edição de serviço.
func (c *Controller) CancelEditService() {
	c.mu.Lock()
	c.editingService = ""
	c.mu.Unlock()
}

// EditingService devolve o id em edição ("" = nenhum).
func (c *Controller) EditingService() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editingService
}

func toServiceResponse(s entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Unit:        s.Unit,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
