package state

import (
	"context"

	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/entity"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/domain/repository"
)

// Clients devolve a cópia atual da coleção de clientes e seu status.
func (c *Controller) Clients() ([]dto.ClientResponse, Status) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dto.ClientResponse, 0, len(c.clients))
	for _, cl := range c.clients {
		out = append(out, toClientResponse(cl))
	}
	return out, c.clientStatus
}

// CreateClient valida, persiste via repositório e só então aplica ao cache o
// registro canônico devolvido pelo servidor (com id/timestamps atribuídos).
func (c *Controller) CreateClient(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	clientType := entity.ClientType(in.Type)
	if in.Type == "" {
		clientType = entity.ClientIndividual
	}
	if !clientType.Valid() {
		return nil, domain.ErrInvalidInput
	}

	created, err := c.clientRepo.Create(ctx, repository.ClientInput{
		Name:    in.Name,
		Company: in.Company,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		Type:    clientType,
		Notes:   in.Notes,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.clients = append(c.clients, *created)
	sortClients(c.clients)
	c.mu.Unlock()

	resp := toClientResponse(*created)
	return &resp, nil
}

// UpdateClient aplica o patch no backend e substitui a entrada local pelo
// registro atualizado. O slot de edição do cliente é zerado no save.
func (c *Controller) UpdateClient(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Phone != nil && *in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	var clientType *entity.ClientType
	if in.Type != nil {
		t := entity.ClientType(*in.Type)
		if !t.Valid() {
			return nil, domain.ErrInvalidInput
		}
		clientType = &t
	}

	updated, err := c.clientRepo.Update(ctx, id, repository.ClientPatch{
		Name:    in.Name,
		Company: in.Company,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		Type:    clientType,
		Notes:   in.Notes,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for i := range c.clients {
		if c.clients[i].ID == id {
			c.clients[i] = *updated
			break
		}
	}
	sortClients(c.clients)
	if c.editingClient == id {
		c.editingClient = ""
	}
	c.mu.Unlock()

	resp := toClientResponse(*updated)
	return &resp, nil
}

// DeleteClient remove no backend e, confirmado, tira da coleção local.
func (c *Controller) DeleteClient(ctx context.Context, id string) error {
	if err := c.clientRepo.Delete(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.clients {
		if c.clients[i].ID == id {
			c.clients = append(c.clients[:i], c.clients[i+1:]...)
			break
		}
	}
	if c.editingClient == id {
		c.editingClient = ""
	}
	c.mu.Unlock()
	return nil
}

// StartEditClient marca o cliente como em edição (um por vez).
func (c *Controller) StartEditClient(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.clients {
		if c.clients[i].ID == id {
			c.editingClient = id
			return nil
		}
	}
	return domain.ErrNotFound
}

// CancelEditClient zera o slot de edição de cliente.
func (c *Controller) CancelEditClient() {
	c.mu.Lock()
	c.editingClient = ""
	c.mu.Unlock()
}

// EditingClient devolve o id em edição ("" = nenhum).
func (c *Controller) EditingClient() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.editingClient
}

func toClientResponse(cl entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        cl.ID,
		Name:      cl.Name,
		Company:   cl.Company,
		Phone:     cl.Phone,
		Email:     cl.Email,
		Address:   cl.Address,
		City:      cl.City,
		Type:      string(cl.Type),
		Notes:     cl.Notes,
		CreatedAt: cl.CreatedAt,
		UpdatedAt: cl.UpdatedAt,
	}
}
