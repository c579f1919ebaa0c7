package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

var _ repository.PettyCashTransactionRepository = (*PettyCashTransactionRepo)(nil)

// PettyCashTransactionRepo implementación del libro de asientos sobre PostgreSQL.
// Append-only: no expone UPDATE ni DELETE. La inmutabilidad del asiento es
// parte del contrato del puerto.
type PettyCashTransactionRepo struct {
	q Querier
}

// NewPettyCashTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPettyCashTransactionRepository(q Querier) *PettyCashTransactionRepo {
	return &PettyCashTransactionRepo{q: q}
}

const txnColumns = `id, company_id, account_id, transaction_code, type, amount,
	balance_before, balance_after, transaction_date, category, recipient_name,
	receipt_number, notes, created_by, created_at`

// Create persiste un asiento del libro de caja menor.
func (r *PettyCashTransactionRepo) Create(txn *entity.PettyCashTransaction) error {
	query := `
		INSERT INTO petty_cash_transactions (id, company_id, account_id, transaction_code, type, amount,
			balance_before, balance_after, transaction_date, category, recipient_name,
			receipt_number, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	createdBy := (*string)(nil)
	if txn.CreatedBy != "" {
		createdBy = &txn.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.CompanyID, txn.AccountID, txn.TransactionCode, txn.Type,
		txn.Amount, txn.BalanceBefore, txn.BalanceAfter, txn.TransactionDate,
		txn.Category, txn.RecipientName, txn.ReceiptNumber, txn.Notes,
		createdBy, txn.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert petty cash transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *PettyCashTransactionRepo) GetByID(id string) (*entity.PettyCashTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM petty_cash_transactions WHERE id = $1`
	var t entity.PettyCashTransaction
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.AccountID, &t.TransactionCode, &t.Type,
		&t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.TransactionDate,
		&t.Category, &t.RecipientName, &t.ReceiptNumber, &t.Notes,
		&createdBy, &t.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get petty cash transaction: %w", err)
	}
	if createdBy != nil {
		t.CreatedBy = *createdBy
	}
	return &t, nil
}

// List devuelve asientos de la empresa según los filtros. El rango de fechas es
// semiabierto: transaction_date >= From y < To. limit < 0 ⇒ sin paginación.
func (r *PettyCashTransactionRepo) List(companyID string, f repository.TransactionFilters) ([]*entity.PettyCashTransaction, error) {
	query := `SELECT ` + txnColumns + `
		FROM petty_cash_transactions
		WHERE company_id = $1
		  AND ($2 = '' OR account_id::text = $2)
		  AND ($3 = '' OR type = $3)
		  AND ($4::timestamptz IS NULL OR transaction_date >= $4)
		  AND ($5::timestamptz IS NULL OR transaction_date < $5)
		ORDER BY transaction_date, created_at`
	from := nullableTime(f.From)
	to := nullableTime(f.To)
	args := []any{companyID, f.AccountID, f.Type, from, to}
	if f.Limit >= 0 {
		query += ` LIMIT $6 OFFSET $7`
		args = append(args, f.Limit, f.Offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list petty cash transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.PettyCashTransaction
	for rows.Next() {
		var t entity.PettyCashTransaction
		var createdBy *string
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.AccountID, &t.TransactionCode, &t.Type,
			&t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.TransactionDate,
			&t.Category, &t.RecipientName, &t.ReceiptNumber, &t.Notes,
			&createdBy, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan petty cash transaction: %w", err)
		}
		if createdBy != nil {
			t.CreatedBy = *createdBy
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
