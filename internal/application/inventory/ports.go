package inventory

import (
	"context"

	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la mutación de la
// posición de inventario, la actualización de costo del producto y el registro
// del movimiento de auditoría.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.LocationInventoryRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
