package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	appinventory "github.com/jhoicas/textil-erp/internal/application/inventory"
	apppettycash "github.com/jhoicas/textil-erp/internal/application/pettycash"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// Asegura que los runners implementan los puertos de la capa de aplicación.
var _ apppettycash.TxRunner = (*PettyCashTxRunner)(nil)
var _ appinventory.TxRunner = (*InventoryTxRunner)(nil)

// PettyCashTxRunner ejecuta callbacks de caja menor dentro de una transacción
// PostgreSQL: el asiento y la actualización del saldo se confirman juntos.
type PettyCashTxRunner struct {
	pool *pgxpool.Pool
}

// NewPettyCashTxRunner construye el runner con el pool.
func NewPettyCashTxRunner(pool *pgxpool.Pool) *PettyCashTxRunner {
	return &PettyCashTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *PettyCashTxRunner) Run(ctx context.Context, fn func(
	accountRepo repository.PettyCashAccountRepository,
	txnRepo repository.PettyCashTransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	accountRepo := NewPettyCashAccountRepository(tx)
	txnRepo := NewPettyCashTransactionRepository(tx)

	if err := fn(accountRepo, txnRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InventoryTxRunner ejecuta callbacks de inventario dentro de una transacción
// PostgreSQL: la posición, el costo del producto y el movimiento de auditoría
// se confirman juntos.
type InventoryTxRunner struct {
	pool *pgxpool.Pool
}

// NewInventoryTxRunner construye el runner con el pool.
func NewInventoryTxRunner(pool *pgxpool.Pool) *InventoryTxRunner {
	return &InventoryTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *InventoryTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.LocationInventoryRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewLocationInventoryRepository(tx)
	productRepo := NewProductRepository(tx)
	movementRepo := NewStockMovementRepository(tx)

	if err := fn(invRepo, productRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
