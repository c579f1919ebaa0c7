package reporting

import (
	"context"
	"time"

	"github.com/beevik/etree"
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// XMLExportUseCase genera la exportación contable XML de los libros de caja
// menor: un documento por empresa con sus cajas y los asientos del período.
// El formato lo consume el software contable del cliente (importador genérico).
type XMLExportUseCase struct {
	companyRepo repository.CompanyRepository
	accountRepo repository.PettyCashAccountRepository
	txnRepo     repository.PettyCashTransactionRepository
}

// NewXMLExportUseCase construye el caso de uso.
func NewXMLExportUseCase(
	companyRepo repository.CompanyRepository,
	accountRepo repository.PettyCashAccountRepository,
	txnRepo repository.PettyCashTransactionRepository,
) *XMLExportUseCase {
	return &XMLExportUseCase{
		companyRepo: companyRepo,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// Export genera el XML con los asientos de todas las cajas en [from, to).
func (uc *XMLExportUseCase) Export(
	_ context.Context,
	companyID string,
	from, to time.Time,
) ([]byte, error) {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	accounts, err := uc.accountRepo.ListByCompany(companyID, "", -1, 0)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ExportacionCajaMenor")
	root.CreateAttr("version", "1.0")
	root.CreateAttr("generado", time.Now().Format(time.RFC3339))

	emisor := root.CreateElement("Empresa")
	emisor.CreateElement("Nit").SetText(company.NIT)
	emisor.CreateElement("RazonSocial").SetText(company.Name)
	emisor.CreateElement("Moneda").SetText(company.Currency)

	periodo := root.CreateElement("Periodo")
	periodo.CreateElement("Desde").SetText(from.Format("2006-01-02"))
	periodo.CreateElement("Hasta").SetText(to.Format("2006-01-02"))

	cuentas := root.CreateElement("Cuentas")
	for _, account := range accounts {
		txns, err := uc.txnRepo.List(companyID, repository.TransactionFilters{
			AccountID: account.ID,
			From:      from,
			To:        to,
			Limit:     -1,
		})
		if err != nil {
			return nil, err
		}
		cuentas.AddChild(accountElement(account, txns))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// accountElement arma el nodo <Cuenta> con sus asientos.
func accountElement(account *entity.PettyCashAccount, txns []*entity.PettyCashTransaction) *etree.Element {
	cuenta := etree.NewElement("Cuenta")
	cuenta.CreateAttr("codigo", account.AccountCode)
	cuenta.CreateElement("Nombre").SetText(account.Name)
	cuenta.CreateElement("Custodio").SetText(account.CustodianName)
	cuenta.CreateElement("SaldoActual").SetText(account.CurrentBalance.StringFixed(2))

	asientos := cuenta.CreateElement("Asientos")
	for _, txn := range txns {
		asiento := asientos.CreateElement("Asiento")
		asiento.CreateAttr("codigo", txn.TransactionCode)
		asiento.CreateElement("Fecha").SetText(txn.TransactionDate.Format("2006-01-02"))
		asiento.CreateElement("Tipo").SetText(txn.Type)
		asiento.CreateElement("Monto").SetText(txn.Amount.StringFixed(2))
		asiento.CreateElement("SaldoAnterior").SetText(txn.BalanceBefore.StringFixed(2))
		asiento.CreateElement("SaldoPosterior").SetText(txn.BalanceAfter.StringFixed(2))
		if txn.Category != "" {
			asiento.CreateElement("Categoria").SetText(txn.Category)
		}
		if txn.ReceiptNumber != "" {
			asiento.CreateElement("NumeroRecibo").SetText(txn.ReceiptNumber)
		}
		if txn.RecipientName != "" {
			asiento.CreateElement("Beneficiario").SetText(txn.RecipientName)
		}
	}
	return cuenta
}
