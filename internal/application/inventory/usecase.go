// Package inventory orquesta los casos de uso de posición de inventario:
// alta de posiciones, ajustes de stock, reservas y listados enriquecidos.
// Los cálculos (disponible, clasificación, validación de reservas) viven en
// internal/domain/inventory; aquí solo se coordinan repositorios y la tx SQL.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/textil-erp/internal/application/dto"
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	domaininv "github.com/jhoicas/textil-erp/internal/domain/inventory"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase casos de uso de inventario por ubicación.
type UseCase struct {
	txRunner     TxRunner
	invRepo      repository.LocationInventoryRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	movementRepo repository.StockMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	invRepo repository.LocationInventoryRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.StockMovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		invRepo:      invRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// CreateInventory registra la posición de un producto en una ubicación.
// La reserva nace en cero; el invariante reservado <= stock queda trivialmente
// satisfecho desde el primer momento.
func (uc *UseCase) CreateInventory(companyID string, in dto.CreateInventoryRequest) (*dto.InventoryPositionResponse, error) {
	if in.StockQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel != nil && in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	loc, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil || loc == nil || loc.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	existing, _ := uc.invRepo.Get(companyID, in.LocationID, in.ProductID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	inv := &entity.LocationInventory{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		ProductID:        in.ProductID,
		LocationID:       in.LocationID,
		StockQuantity:    in.StockQuantity,
		ReservedQuantity: decimal.Zero,
		ReorderLevel:     in.ReorderLevel,
		UpdatedAt:        time.Now(),
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	resp := toPositionResponse(inv)
	resp.ProductSKU = product.SKU
	resp.ProductName = product.Name
	resp.LocationName = loc.Name
	return resp, nil
}

// List devuelve las posiciones de la empresa con el disponible derivado y la
// clasificación de salud de stock calculados por el dominio.
func (uc *UseCase) List(companyID string, f repository.InventoryFilters) ([]dto.InventoryPositionResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	rows, err := uc.invRepo.ListDetailed(companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryPositionResponse, 0, len(rows))
	for _, row := range rows {
		resp := toPositionResponse(&row.Inventory)
		resp.ProductSKU = row.ProductSKU
		resp.ProductName = row.ProductName
		resp.LocationName = row.LocationName
		out = append(out, *resp)
	}
	return out, nil
}

// AdjustStock aplica un delta con signo al stock bajo bloqueo de fila.
// El stock resultante no puede ser negativo ni menor que lo reservado.
// En entradas con costo unitario conocido recalcula el costo promedio del
// producto dentro de la misma transacción, y todo ajuste deja un movimiento
// de auditoría inmutable.
func (uc *UseCase) AdjustStock(ctx context.Context, companyID, userID, inventoryID string, in dto.AdjustStockRequest) (*dto.InventoryPositionResponse, error) {
	if in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.InventoryPositionResponse
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.LocationInventoryRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		inv, err := invRepo.GetForUpdate(inventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.CompanyID != companyID {
			return domain.ErrForbidden
		}

		newStock, err := domaininv.ValidateStockChange(inv.StockQuantity, inv.ReservedQuantity, in.Delta)
		if err != nil {
			return err
		}

		// Entrada con costo conocido: costo promedio ponderado sobre el stock previo.
		if in.Delta.IsPositive() && in.UnitCost != nil {
			product, err := productRepo.GetByID(inv.ProductID)
			if err != nil || product == nil {
				return domain.ErrNotFound
			}
			newCost := domaininv.AverageCost(inv.StockQuantity, product.CostPrice, in.Delta, *in.UnitCost)
			if err := productRepo.UpdateCostPrice(inv.ProductID, newCost); err != nil {
				return err
			}
		}

		inv.StockQuantity = newStock
		inv.UpdatedAt = time.Now()
		if err := invRepo.Upsert(inv); err != nil {
			return err
		}

		movementType := entity.MovementTypeIn
		if in.Delta.IsNegative() {
			movementType = entity.MovementTypeOut
		}
		if err := movementRepo.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			InventoryID: inv.ID,
			ProductID:   inv.ProductID,
			LocationID:  inv.LocationID,
			Type:        movementType,
			Quantity:    in.Delta,
			UnitCost:    in.UnitCost,
			Notes:       in.Notes,
			CreatedAt:   time.Now(),
			CreatedBy:   userID,
		}); err != nil {
			return err
		}

		resp = toPositionResponse(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListMovements devuelve el historial de movimientos de una posición,
// más recientes primero.
func (uc *UseCase) ListMovements(companyID, inventoryID string, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	inv, err := uc.invRepo.GetByID(inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	movements, err := uc.movementRepo.ListByInventory(companyID, inventoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:          m.ID,
			InventoryID: m.InventoryID,
			ProductID:   m.ProductID,
			LocationID:  m.LocationID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			UnitCost:    m.UnitCost,
			Notes:       m.Notes,
			CreatedAt:   m.CreatedAt,
			CreatedBy:   m.CreatedBy,
		})
	}
	return out, nil
}

// ChangeReservation reserva (delta positivo) o libera (delta negativo) stock
// bajo bloqueo de fila. El invariante 0 <= reservado <= stock se valida en el
// dominio; una violación es error, nunca recorte silencioso.
func (uc *UseCase) ChangeReservation(ctx context.Context, companyID, inventoryID string, in dto.ChangeReservationRequest) (*dto.InventoryPositionResponse, error) {
	if in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.InventoryPositionResponse
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.LocationInventoryRepository,
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
	) error {
		inv, err := invRepo.GetForUpdate(inventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.CompanyID != companyID {
			return domain.ErrForbidden
		}

		newReserved, err := domaininv.ValidateReservationChange(inv.StockQuantity, inv.ReservedQuantity, in.Delta)
		if err != nil {
			return err
		}
		inv.ReservedQuantity = newReserved
		inv.UpdatedAt = time.Now()
		if err := invRepo.Upsert(inv); err != nil {
			return err
		}
		resp = toPositionResponse(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteInventory elimina la posición solo si no tiene stock ni reservas;
// con existencias vivas es conflicto, no borrado en cascada.
func (uc *UseCase) DeleteInventory(companyID, inventoryID string) error {
	inv, err := uc.invRepo.GetByID(inventoryID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if !inv.StockQuantity.IsZero() || !inv.ReservedQuantity.IsZero() {
		return domain.ErrConflict
	}
	return uc.invRepo.Delete(inventoryID)
}

func toPositionResponse(inv *entity.LocationInventory) *dto.InventoryPositionResponse {
	available := domaininv.ComputeAvailable(inv.StockQuantity, inv.ReservedQuantity)
	return &dto.InventoryPositionResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		LocationID:        inv.LocationID,
		StockQuantity:     inv.StockQuantity,
		ReservedQuantity:  inv.ReservedQuantity,
		AvailableQuantity: available,
		ReorderLevel:      inv.ReorderLevel,
		StockStatus:       domaininv.ClassifyStockStatus(available, inv.ReorderLevel),
		UpdatedAt:         inv.UpdatedAt,
	}
}
