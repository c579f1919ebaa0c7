package reporting_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/textil-erp/internal/application/reporting"
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/pettycash"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyID = "11111111-1111-1111-1111-111111111111"
	testAccountID = "22222222-2222-2222-2222-222222222222"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeReportingRepo struct {
	todayRep, todayDis decimal.Decimal
	monthRep, monthDis decimal.Decimal
	health             repository.StockHealthCount
	lowBalance         int
}

func (f *fakeReportingRepo) GetPettyCashFlow(_ context.Context, _ string, start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	// rango de un día ⇒ "hoy"; más largo ⇒ "mes"
	if end.Sub(start) <= 24*time.Hour {
		return f.todayRep, f.todayDis, nil
	}
	return f.monthRep, f.monthDis, nil
}

func (f *fakeReportingRepo) CountStockHealth(_ context.Context, _ string) (repository.StockHealthCount, error) {
	return f.health, nil
}

func (f *fakeReportingRepo) CountLowBalanceAccounts(_ context.Context, _ string) (int, error) {
	return f.lowBalance, nil
}

type fakeCompanyRepo struct{ company *entity.Company }

func (f *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}
func (f *fakeCompanyRepo) GetByNIT(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(*entity.Company) error             { return nil }
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

type fakeAccountRepo struct{ accounts []*entity.PettyCashAccount }

func (f *fakeAccountRepo) Create(*entity.PettyCashAccount) error { return nil }
func (f *fakeAccountRepo) GetByID(id string) (*entity.PettyCashAccount, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (f *fakeAccountRepo) GetForUpdate(id string) (*entity.PettyCashAccount, error) {
	return f.GetByID(id)
}
func (f *fakeAccountRepo) GetByCompanyAndCode(string, string) (*entity.PettyCashAccount, error) {
	return nil, nil
}
func (f *fakeAccountRepo) UpdateBalance(string, decimal.Decimal) error { return nil }
func (f *fakeAccountRepo) Update(*entity.PettyCashAccount) error       { return nil }
func (f *fakeAccountRepo) ListByCompany(companyID, _ string, _, _ int) ([]*entity.PettyCashAccount, error) {
	var out []*entity.PettyCashAccount
	for _, a := range f.accounts {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeTxnRepo struct{ txns []*entity.PettyCashTransaction }

func (f *fakeTxnRepo) Create(*entity.PettyCashTransaction) error { return nil }
func (f *fakeTxnRepo) GetByID(string) (*entity.PettyCashTransaction, error) {
	return nil, nil
}
func (f *fakeTxnRepo) List(_ string, filters repository.TransactionFilters) ([]*entity.PettyCashTransaction, error) {
	var out []*entity.PettyCashTransaction
	for _, t := range f.txns {
		if filters.AccountID != "" && t.AccountID != filters.AccountID {
			continue
		}
		if !filters.From.IsZero() && t.TransactionDate.Before(filters.From) {
			continue
		}
		if !filters.To.IsZero() && !t.TransactionDate.Before(filters.To) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type fakePDFGen struct {
	gotTotals pettycash.Totals
	gotTxns   int
}

func (f *fakePDFGen) GenerateLedgerPDF(
	_ context.Context,
	_ *entity.Company,
	_ *entity.PettyCashAccount,
	txns []*entity.PettyCashTransaction,
	totals pettycash.Totals,
	_, _ time.Time,
) ([]byte, error) {
	f.gotTotals = totals
	f.gotTxns = len(txns)
	return []byte("%PDF-1.4 fake"), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildCompany() *entity.Company {
	return &entity.Company{
		ID:       testCompanyID,
		NIT:      "900123456-8",
		Name:     "Confecciones El Hilo SAS",
		Currency: "COP",
	}
}

func buildAccount() *entity.PettyCashAccount {
	return &entity.PettyCashAccount{
		ID:             testAccountID,
		CompanyID:      testCompanyID,
		AccountCode:    "CM-PLANTA-01",
		Name:           "Caja planta principal",
		Currency:       "COP",
		CurrentBalance: dec("850.00"),
		InitialBalance: dec("1000.00"),
		CustodianName:  "Marta Ruiz",
		IsActive:       true,
	}
}

func buildTxn(code, txType, amount, before, after string, date time.Time) *entity.PettyCashTransaction {
	return &entity.PettyCashTransaction{
		ID:              code,
		CompanyID:       testCompanyID,
		AccountID:       testAccountID,
		TransactionCode: code,
		Type:            txType,
		Amount:          dec(amount),
		BalanceBefore:   dec(before),
		BalanceAfter:    dec(after),
		TransactionDate: date,
		Category:        "transporte",
	}
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func TestDashboard_ResumenOperativo(t *testing.T) {
	repo := &fakeReportingRepo{
		todayRep: dec("500.00"),
		todayDis: dec("120.50"),
		monthRep: dec("2500.00"),
		monthDis: dec("1830.75"),
		health: repository.StockHealthCount{
			OutOfStock: 2, LowStock: 5, InStock: 40,
		},
		lowBalance: 3,
	}
	uc := reporting.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.True(t, summary.TodayReplenishments.Equal(dec("500.00")))
	assert.True(t, summary.TodayDisbursements.Equal(dec("120.50")))
	assert.True(t, summary.MonthReplenishments.Equal(dec("2500.00")))
	assert.True(t, summary.MonthDisbursements.Equal(dec("1830.75")))
	assert.Equal(t, 3, summary.LowBalanceAccounts)
	assert.Equal(t, 2, summary.OutOfStockCount)
	assert.Equal(t, 5, summary.LowStockCount)
	assert.Equal(t, 40, summary.InStockCount)
}

// ── Reporte PDF ───────────────────────────────────────────────────────────────

func TestLedgerReport_GeneraConTotalesDelPeriodo(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	companyRepo := &fakeCompanyRepo{company: buildCompany()}
	accountRepo := &fakeAccountRepo{accounts: []*entity.PettyCashAccount{buildAccount()}}
	txnRepo := &fakeTxnRepo{txns: []*entity.PettyCashTransaction{
		buildTxn("CM-001", entity.TransactionTypeReplenishment, "500.00", "1000.00", "1500.00", from.AddDate(0, 0, 2)),
		buildTxn("CM-002", entity.TransactionTypeDisbursement, "200.00", "1500.00", "1300.00", from.AddDate(0, 0, 10)),
		// fuera del período: no debe contar
		buildTxn("CM-003", entity.TransactionTypeDisbursement, "50.00", "1300.00", "1250.00", to),
	}}
	pdfGen := &fakePDFGen{}
	uc := reporting.NewLedgerReportUseCase(companyRepo, accountRepo, txnRepo, pdfGen)

	out, err := uc.Generate(context.Background(), testCompanyID, testAccountID, from, to)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, 2, pdfGen.gotTxns)
	assert.True(t, pdfGen.gotTotals.TotalReplenishments.Equal(dec("500.00")))
	assert.True(t, pdfGen.gotTotals.TotalDisbursements.Equal(dec("200.00")))
	assert.True(t, pdfGen.gotTotals.NetChange.Equal(dec("300.00")))
}

func TestLedgerReport_CuentaDeOtraEmpresa(t *testing.T) {
	account := buildAccount()
	account.CompanyID = "otra-empresa"

	uc := reporting.NewLedgerReportUseCase(
		&fakeCompanyRepo{company: buildCompany()},
		&fakeAccountRepo{accounts: []*entity.PettyCashAccount{account}},
		&fakeTxnRepo{},
		&fakePDFGen{},
	)

	_, err := uc.Generate(context.Background(), testCompanyID, testAccountID,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLedgerReport_PeriodoInvalido(t *testing.T) {
	uc := reporting.NewLedgerReportUseCase(
		&fakeCompanyRepo{company: buildCompany()},
		&fakeAccountRepo{},
		&fakeTxnRepo{},
		&fakePDFGen{},
	)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Generate(context.Background(), testCompanyID, testAccountID, from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Exportación XML ───────────────────────────────────────────────────────────

func TestXMLExport_DocumentoContable(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	uc := reporting.NewXMLExportUseCase(
		&fakeCompanyRepo{company: buildCompany()},
		&fakeAccountRepo{accounts: []*entity.PettyCashAccount{buildAccount()}},
		&fakeTxnRepo{txns: []*entity.PettyCashTransaction{
			buildTxn("CM-001", entity.TransactionTypeDisbursement, "120.00", "1000.00", "880.00", from.AddDate(0, 0, 5)),
		}},
	)

	out, err := uc.Export(context.Background(), testCompanyID, from, to)
	require.NoError(t, err)

	xml := string(out)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, "<ExportacionCajaMenor")
	assert.Contains(t, xml, "<Nit>900123456-8</Nit>")
	assert.Contains(t, xml, `codigo="CM-PLANTA-01"`)
	assert.Contains(t, xml, `codigo="CM-001"`)
	assert.Contains(t, xml, "<SaldoAnterior>1000.00</SaldoAnterior>")
	assert.Contains(t, xml, "<SaldoPosterior>880.00</SaldoPosterior>")
	assert.Contains(t, xml, "<Categoria>transporte</Categoria>")
}

func TestXMLExport_EmpresaInexistente(t *testing.T) {
	uc := reporting.NewXMLExportUseCase(&fakeCompanyRepo{}, &fakeAccountRepo{}, &fakeTxnRepo{})

	_, err := uc.Export(context.Background(), "no-existe",
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
