package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
)

// Export serializa o snapshot completo das quatro coleções em memória com
// id e carimbo de exportação. O documento reflete o cache atual, que pode
// estar defasado em relação ao backend.
func (c *Controller) Export() dto.ExportDocument {
	clients, _ := c.Clients()
	services, _ := c.Services()
	expenses, _ := c.TravelExpenses()
	quotes, _ := c.Quotes()

	return dto.ExportDocument{
		ExportID:       uuid.NewString(),
		ExportedAt:     time.Now().UTC(),
		Clients:        clients,
		Services:       services,
		TravelExpenses: expenses,
		Quotes:         quotes,
	}
}
