// Package pettycash orquesta los casos de uso del libro de caja menor:
// apertura de cuentas, registro transaccional de asientos y reportes de período.
// Las reglas de negocio viven en internal/domain/pettycash; aquí solo se
// coordinan repositorios y la transacción SQL.
package pettycash

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/textil-erp/internal/application/dto"
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	ledger "github.com/jhoicas/textil-erp/internal/domain/pettycash"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

const defaultCurrency = "COP"

// UseCase casos de uso de caja menor.
type UseCase struct {
	txRunner     TxRunner
	accountRepo  repository.PettyCashAccountRepository
	txnRepo      repository.PettyCashTransactionRepository
	locationRepo repository.LocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	accountRepo repository.PettyCashAccountRepository,
	txnRepo repository.PettyCashTransactionRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		accountRepo:  accountRepo,
		txnRepo:      txnRepo,
		locationRepo: locationRepo,
	}
}

// CreateAccount abre una caja menor. El saldo actual nace igual al saldo
// inicial y de ahí en adelante solo lo mueven transacciones aceptadas.
func (uc *UseCase) CreateAccount(companyID string, in dto.CreatePettyCashAccountRequest) (*dto.PettyCashAccountResponse, error) {
	if strings.TrimSpace(in.AccountCode) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialBalance.IsNegative() {
		return nil, domain.ErrMontoInvalido
	}
	if in.MinBalance != nil && in.MinBalance.IsNegative() {
		return nil, domain.ErrMontoInvalido
	}
	if in.MaxLimit != nil && !in.MaxLimit.IsPositive() {
		return nil, domain.ErrMontoInvalido
	}

	loc, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	existing, _ := uc.accountRepo.GetByCompanyAndCode(companyID, in.AccountCode)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	now := time.Now()
	account := &entity.PettyCashAccount{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		LocationID:     in.LocationID,
		AccountCode:    in.AccountCode,
		Name:           in.Name,
		Currency:       currency,
		CurrentBalance: in.InitialBalance,
		InitialBalance: in.InitialBalance,
		MaxLimit:       in.MaxLimit,
		MinBalance:     in.MinBalance,
		CustodianName:  in.CustodianName,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetAccount devuelve una caja de la empresa.
func (uc *UseCase) GetAccount(companyID, accountID string) (*dto.PettyCashAccountResponse, error) {
	account, err := uc.ownedAccount(companyID, accountID)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// ListAccounts lista las cajas de la empresa, opcionalmente filtradas por sede.
func (uc *UseCase) ListAccounts(companyID, locationID string, page dto.PageRequest) ([]dto.PettyCashAccountResponse, error) {
	page.DefaultPage()
	accounts, err := uc.accountRepo.ListByCompany(companyID, locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PettyCashAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

// DeactivateAccount apaga la caja (flag, no borrado): el historial se conserva
// y la cuenta deja de aceptar transacciones.
func (uc *UseCase) DeactivateAccount(companyID, accountID string) error {
	account, err := uc.ownedAccount(companyID, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return domain.ErrConflict
	}
	account.IsActive = false
	account.UpdatedAt = time.Now()
	return uc.accountRepo.Update(account)
}

// CreateTransaction registra un asiento de caja menor de forma transaccional:
// bloquea la fila de la cuenta (SELECT FOR UPDATE), valida la propuesta con el
// motor de dominio sobre el saldo serializado, persiste el asiento con su par
// BalanceBefore/BalanceAfter y actualiza el saldo. Commit o Rollback juntos.
//
// Una reposición que supere MaxLimit exige AcknowledgeOverLimit=true; sin esa
// confirmación se rechaza con ErrSuperaTope para que la UI pregunte.
func (uc *UseCase) CreateTransaction(ctx context.Context, companyID, userID, accountID string, in dto.CreateTransactionRequest) (*dto.PettyCashTransactionResponse, error) {
	if in.Type == entity.TransactionTypeDisbursement && strings.TrimSpace(in.Category) == "" {
		return nil, domain.ErrInvalidInput
	}

	// Pre-chequeo de pertenencia fuera de la tx (falla rápido sin bloquear).
	if _, err := uc.ownedAccount(companyID, accountID); err != nil {
		return nil, err
	}

	var resp *dto.PettyCashTransactionResponse
	err := uc.txRunner.Run(ctx, func(
		accountRepo repository.PettyCashAccountRepository,
		txnRepo repository.PettyCashTransactionRepository,
	) error {
		account, err := accountRepo.GetForUpdate(accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}

		proposal, err := ledger.ProposeTransaction(account, in.Type, in.Amount, in.TransactionDate)
		if err != nil {
			return err
		}
		if proposal.OverMaxLimit && !in.AcknowledgeOverLimit {
			return domain.ErrSuperaTope
		}

		now := time.Now()
		txn := &entity.PettyCashTransaction{
			ID:              uuid.New().String(),
			CompanyID:       companyID,
			AccountID:       account.ID,
			TransactionCode: newTransactionCode(),
			Type:            in.Type,
			Amount:          in.Amount,
			BalanceBefore:   proposal.BalanceBefore,
			BalanceAfter:    proposal.BalanceAfter,
			TransactionDate: in.TransactionDate,
			Category:        in.Category,
			RecipientName:   in.RecipientName,
			ReceiptNumber:   in.ReceiptNumber,
			Notes:           in.Notes,
			CreatedBy:       userID,
			CreatedAt:       now,
		}
		if err := txnRepo.Create(txn); err != nil {
			return err
		}
		if err := accountRepo.UpdateBalance(account.ID, proposal.BalanceAfter); err != nil {
			return err
		}
		resp = toTransactionResponse(txn, proposal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListTransactions devuelve el libro filtrado (período semiabierto [From, To)).
func (uc *UseCase) ListTransactions(companyID string, f repository.TransactionFilters) ([]dto.PettyCashTransactionResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	txns, err := uc.txnRepo.List(companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PettyCashTransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, *toTransactionResponse(txn, nil))
	}
	return out, nil
}

// PeriodSummary agrega los movimientos de una caja en [from, to) con el motor
// de dominio. Determinista: mismo período, mismo resultado.
func (uc *UseCase) PeriodSummary(companyID, accountID string, from, to time.Time) (*dto.PeriodSummaryResponse, error) {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.ownedAccount(companyID, accountID); err != nil {
		return nil, err
	}
	txns, err := uc.txnRepo.List(companyID, repository.TransactionFilters{
		AccountID: accountID,
		From:      from,
		To:        to,
		Limit:     -1, // sin paginar: el agregado necesita el período completo
	})
	if err != nil {
		return nil, err
	}
	totals := ledger.Aggregate(txns, from, to)
	return &dto.PeriodSummaryResponse{
		AccountID:           accountID,
		From:                from,
		To:                  to,
		TotalReplenishments: totals.TotalReplenishments,
		TotalDisbursements:  totals.TotalDisbursements,
		NetChange:           totals.NetChange,
		TransactionCount:    totals.Count,
	}, nil
}

// ownedAccount carga la cuenta y verifica pertenencia a la empresa.
func (uc *UseCase) ownedAccount(companyID, accountID string) (*entity.PettyCashAccount, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return account, nil
}

// newTransactionCode genera el consecutivo legible del asiento.
func newTransactionCode() string {
	return "CM-" + strings.ToUpper(uuid.New().String()[:8])
}

func toAccountResponse(a *entity.PettyCashAccount) *dto.PettyCashAccountResponse {
	return &dto.PettyCashAccountResponse{
		ID:             a.ID,
		AccountCode:    a.AccountCode,
		Name:           a.Name,
		LocationID:     a.LocationID,
		Currency:       a.Currency,
		CurrentBalance: a.CurrentBalance,
		InitialBalance: a.InitialBalance,
		MaxLimit:       a.MaxLimit,
		MinBalance:     a.MinBalance,
		CustodianName:  a.CustodianName,
		IsActive:       a.IsActive,
		Status:         ledger.AccountSummary(a),
		CreatedAt:      a.CreatedAt,
	}
}

func toTransactionResponse(txn *entity.PettyCashTransaction, p *ledger.Proposal) *dto.PettyCashTransactionResponse {
	r := &dto.PettyCashTransactionResponse{
		ID:              txn.ID,
		AccountID:       txn.AccountID,
		TransactionCode: txn.TransactionCode,
		Type:            txn.Type,
		Amount:          txn.Amount,
		BalanceBefore:   txn.BalanceBefore,
		BalanceAfter:    txn.BalanceAfter,
		TransactionDate: txn.TransactionDate,
		Category:        txn.Category,
		RecipientName:   txn.RecipientName,
		ReceiptNumber:   txn.ReceiptNumber,
		Notes:           txn.Notes,
		CreatedAt:       txn.CreatedAt,
	}
	if p != nil {
		r.LowBalanceAfter = p.LowBalanceAfter
		r.OverMaxLimit = p.OverMaxLimit
	}
	return r
}
