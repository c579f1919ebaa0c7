package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de caja menor.
const (
	TransactionTypeReplenishment = "REPLENISHMENT" // reposición del fondo
	TransactionTypeDisbursement  = "DISBURSEMENT"  // egreso / gasto menor
	TransactionTypeAdjustment    = "ADJUSTMENT"    // ajuste con signo (arqueo)
)

// PettyCashTransaction representa un asiento del libro de caja menor.
//
// El libro es append-only: una transacción se crea una vez y nunca se edita ni
// se elimina. BalanceBefore y BalanceAfter se calculan y persisten al momento
// de crear el asiento y jamás se recalculan: son la pista de auditoría.
type PettyCashTransaction struct {
	ID              string
	CompanyID       string
	AccountID       string
	TransactionCode string          // consecutivo legible, único por empresa
	Type            string          // REPLENISHMENT, DISBURSEMENT, ADJUSTMENT
	Amount          decimal.Decimal // >0 en REPLENISHMENT/DISBURSEMENT; con signo en ADJUSTMENT
	BalanceBefore   decimal.Decimal
	BalanceAfter    decimal.Decimal
	TransactionDate time.Time // fecha contable (la define el usuario, puede diferir de CreatedAt)
	Category        string    // obligatoria en DISBURSEMENT (transporte, papelería, cafetería...)
	RecipientName   string
	ReceiptNumber   string
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}
