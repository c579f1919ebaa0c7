package repository

import (
	"time"

	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PettyCashAccountRepository define el puerto de persistencia para cajas menores (DIP).
// GetForUpdate bloquea la fila de la cuenta (SELECT FOR UPDATE) para que el par
// BalanceBefore/BalanceAfter del asiento se calcule sobre el saldo serializado.
type PettyCashAccountRepository interface {
	Create(account *entity.PettyCashAccount) error
	GetByID(id string) (*entity.PettyCashAccount, error)
	GetForUpdate(id string) (*entity.PettyCashAccount, error)
	GetByCompanyAndCode(companyID, accountCode string) (*entity.PettyCashAccount, error)
	UpdateBalance(accountID string, newBalance decimal.Decimal) error
	Update(account *entity.PettyCashAccount) error
	ListByCompany(companyID, locationID string, limit, offset int) ([]*entity.PettyCashAccount, error)
}

// TransactionFilters filtros de consulta del libro de caja menor.
type TransactionFilters struct {
	AccountID string
	Type      string
	From      time.Time // inclusive
	To        time.Time // exclusivo
	Limit     int
	Offset    int
}

// PettyCashTransactionRepository define el puerto del libro de asientos (append-only:
// no hay Update ni Delete; la inmutabilidad del asiento es parte del contrato).
type PettyCashTransactionRepository interface {
	Create(txn *entity.PettyCashTransaction) error
	GetByID(id string) (*entity.PettyCashTransaction, error)
	List(companyID string, f TransactionFilters) ([]*entity.PettyCashTransaction, error)
}
