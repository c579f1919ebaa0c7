package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.PettyCashAccountRepository = (*PettyCashAccountRepo)(nil)

// PettyCashAccountRepo implementación sobre PostgreSQL (usable con pool o tx).
type PettyCashAccountRepo struct {
	q Querier
}

// NewPettyCashAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPettyCashAccountRepository(q Querier) *PettyCashAccountRepo {
	return &PettyCashAccountRepo{q: q}
}

const accountColumns = `id, company_id, location_id, account_code, name, currency,
	current_balance, initial_balance, max_limit, min_balance, custodian_name,
	is_active, created_at, updated_at`

// Create persiste una nueva caja menor.
func (r *PettyCashAccountRepo) Create(account *entity.PettyCashAccount) error {
	query := `
		INSERT INTO petty_cash_accounts (id, company_id, location_id, account_code, name, currency,
			current_balance, initial_balance, max_limit, min_balance, custodian_name,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.CompanyID, account.LocationID, account.AccountCode,
		account.Name, account.Currency, account.CurrentBalance, account.InitialBalance,
		account.MaxLimit, account.MinBalance, account.CustodianName,
		account.IsActive, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert petty cash account: %w", err)
	}
	return nil
}

// GetByID obtiene una caja por ID.
func (r *PettyCashAccountRepo) GetByID(id string) (*entity.PettyCashAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM petty_cash_accounts WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene la caja y bloquea la fila (SELECT FOR UPDATE): el par
// BalanceBefore/BalanceAfter del asiento se calcula sobre el saldo serializado.
func (r *PettyCashAccountRepo) GetForUpdate(id string) (*entity.PettyCashAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM petty_cash_accounts WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// GetByCompanyAndCode obtiene una caja por código dentro de una empresa.
func (r *PettyCashAccountRepo) GetByCompanyAndCode(companyID, accountCode string) (*entity.PettyCashAccount, error) {
	query := `SELECT ` + accountColumns + `
		FROM petty_cash_accounts WHERE company_id = $1 AND account_code = $2`
	return r.scanOne(query, companyID, accountCode)
}

// UpdateBalance actualiza solo el saldo actual de la caja.
func (r *PettyCashAccountRepo) UpdateBalance(accountID string, newBalance decimal.Decimal) error {
	query := `UPDATE petty_cash_accounts SET current_balance = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, accountID, newBalance)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update actualiza los datos administrativos de la caja (nunca InitialBalance).
func (r *PettyCashAccountRepo) Update(account *entity.PettyCashAccount) error {
	query := `
		UPDATE petty_cash_accounts
		SET name = $2, max_limit = $3, min_balance = $4, custodian_name = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Name, account.MaxLimit, account.MinBalance,
		account.CustodianName, account.IsActive, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update petty cash account: %w", err)
	}
	return nil
}

// ListByCompany devuelve las cajas de una empresa, opcionalmente filtradas por
// sede. limit < 0 ⇒ sin paginación.
func (r *PettyCashAccountRepo) ListByCompany(companyID, locationID string, limit, offset int) ([]*entity.PettyCashAccount, error) {
	query := `SELECT ` + accountColumns + `
		FROM petty_cash_accounts
		WHERE company_id = $1
		  AND ($2 = '' OR location_id::text = $2)
		ORDER BY account_code`
	args := []any{companyID, locationID}
	if limit >= 0 {
		query += ` LIMIT $3 OFFSET $4`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list petty cash accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.PettyCashAccount
	for rows.Next() {
		var a entity.PettyCashAccount
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.LocationID, &a.AccountCode, &a.Name, &a.Currency,
			&a.CurrentBalance, &a.InitialBalance, &a.MaxLimit, &a.MinBalance,
			&a.CustodianName, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan petty cash account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *PettyCashAccountRepo) scanOne(query string, args ...any) (*entity.PettyCashAccount, error) {
	var a entity.PettyCashAccount
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.ID, &a.CompanyID, &a.LocationID, &a.AccountCode, &a.Name, &a.Currency,
		&a.CurrentBalance, &a.InitialBalance, &a.MaxLimit, &a.MinBalance,
		&a.CustodianName, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get petty cash account: %w", err)
	}
	return &a, nil
}
