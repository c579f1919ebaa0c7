package pettycash

import (
	"context"

	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el asiento y la actualización
// del saldo de la caja se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accountRepo repository.PettyCashAccountRepository,
		txnRepo repository.PettyCashTransactionRepository,
	) error) error
}
