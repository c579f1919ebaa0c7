package reporting

import (
	"context"
	"time"

	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/pettycash"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// LedgerPDFGenerator puerto para la generación del reporte PDF del libro
// de caja menor. La implementación vive en infrastructure/pdf.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(
		ctx context.Context,
		company *entity.Company,
		account *entity.PettyCashAccount,
		transactions []*entity.PettyCashTransaction,
		totals pettycash.Totals,
		from, to time.Time,
	) ([]byte, error)
}

// LedgerReportUseCase arma el reporte PDF del libro de una caja menor
// en un período [from, to).
type LedgerReportUseCase struct {
	companyRepo repository.CompanyRepository
	accountRepo repository.PettyCashAccountRepository
	txnRepo     repository.PettyCashTransactionRepository
	pdfGen      LedgerPDFGenerator
}

// NewLedgerReportUseCase construye el caso de uso.
func NewLedgerReportUseCase(
	companyRepo repository.CompanyRepository,
	accountRepo repository.PettyCashAccountRepository,
	txnRepo repository.PettyCashTransactionRepository,
	pdfGen LedgerPDFGenerator,
) *LedgerReportUseCase {
	return &LedgerReportUseCase{
		companyRepo: companyRepo,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		pdfGen:      pdfGen,
	}
}

// Generate genera el PDF del libro de la caja en [from, to).
func (uc *LedgerReportUseCase) Generate(
	ctx context.Context,
	companyID, accountID string,
	from, to time.Time,
) ([]byte, error) {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
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
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	txns, err := uc.txnRepo.List(companyID, repository.TransactionFilters{
		AccountID: accountID,
		From:      from,
		To:        to,
		Limit:     -1, // sin paginar: el reporte cubre el período completo
	})
	if err != nil {
		return nil, err
	}
	totals := pettycash.Aggregate(txns, from, to)
	return uc.pdfGen.GenerateLedgerPDF(ctx, company, account, txns, totals, from, to)
}
