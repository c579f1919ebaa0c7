// Package pettycash implementa el motor del libro de caja menor (servicio de
// dominio puro): valida transacciones propuestas contra el snapshot de la
// cuenta y calcula el saldo resultante, sin tocar persistencia ni reloj.
package pettycash

import (
	"time"

	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Estados de clasificación de una caja menor (para badges en listados).
const (
	StatusNormal     = "NORMAL"
	StatusLowBalance = "LOW_BALANCE"
)

// Proposal es el resultado de validar una transacción propuesta.
// BalanceBefore/BalanceAfter son los valores que el caller debe persistir en
// el asiento; las banderas son advertencias, no rechazos.
type Proposal struct {
	BalanceBefore   decimal.Decimal
	BalanceAfter    decimal.Decimal
	LowBalanceAfter bool // saldo resultante por debajo de MinBalance
	OverMaxLimit    bool // reposición que deja el saldo por encima de MaxLimit
}

// SignedAmount devuelve el monto con el signo que aplica al saldo según el tipo:
// +amount en REPLENISHMENT, -amount en DISBURSEMENT, amount tal cual en ADJUSTMENT.
func SignedAmount(txType string, amount decimal.Decimal) (decimal.Decimal, error) {
	switch txType {
	case entity.TransactionTypeReplenishment:
		return amount, nil
	case entity.TransactionTypeDisbursement:
		return amount.Neg(), nil
	case entity.TransactionTypeAdjustment:
		return amount, nil
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
}

// ProposeTransaction valida una transacción contra el estado actual de la
// cuenta y calcula el par BalanceBefore/BalanceAfter. Es una función pura:
// no persiste nada; la atomicidad al escribir es responsabilidad del caller
// (transacción SQL con bloqueo de fila).
//
// Reglas:
//   - la cuenta debe estar activa (ErrCuentaInactiva)
//   - REPLENISHMENT y DISBURSEMENT exigen monto estrictamente positivo;
//     ADJUSTMENT lleva signo pero no puede ser cero (ErrMontoInvalido)
//   - ningún asiento aceptado puede dejar el saldo negativo (ErrSaldoInsuficiente)
//   - superar MaxLimit en una reposición es advertencia (OverMaxLimit), no rechazo
func ProposeTransaction(account *entity.PettyCashAccount, txType string, amount decimal.Decimal, txDate time.Time) (*Proposal, error) {
	if account == nil || txDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !account.IsActive {
		return nil, domain.ErrCuentaInactiva
	}

	switch txType {
	case entity.TransactionTypeReplenishment, entity.TransactionTypeDisbursement:
		if !amount.IsPositive() {
			return nil, domain.ErrMontoInvalido
		}
	case entity.TransactionTypeAdjustment:
		if amount.IsZero() {
			return nil, domain.ErrMontoInvalido
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	signed, err := SignedAmount(txType, amount)
	if err != nil {
		return nil, err
	}

	before := account.CurrentBalance
	after := before.Add(signed)
	if after.IsNegative() {
		return nil, domain.ErrSaldoInsuficiente
	}

	p := &Proposal{
		BalanceBefore: before,
		BalanceAfter:  after,
	}
	if account.MinBalance != nil && after.LessThan(*account.MinBalance) {
		p.LowBalanceAfter = true
	}
	if txType == entity.TransactionTypeReplenishment &&
		account.MaxLimit != nil && after.GreaterThan(*account.MaxLimit) {
		p.OverMaxLimit = true
	}
	return p, nil
}

// AccountSummary clasifica la cuenta para presentación: LOW_BALANCE cuando el
// saldo actual está por debajo de MinBalance, NORMAL en cualquier otro caso.
func AccountSummary(account *entity.PettyCashAccount) string {
	if account.MinBalance != nil && account.CurrentBalance.LessThan(*account.MinBalance) {
		return StatusLowBalance
	}
	return StatusNormal
}

// Totals agrega los movimientos de un período.
type Totals struct {
	TotalReplenishments decimal.Decimal
	TotalDisbursements  decimal.Decimal
	NetChange           decimal.Decimal
	Count               int
}

// Aggregate suma los movimientos cuya fecha contable cae en el intervalo
// semiabierto [from, to): el inicio cuenta, el fin no, para que períodos
// consecutivos nunca dupliquen un asiento de frontera.
//
// NetChange = reposiciones - egresos + ajustes con signo. Determinista para
// el mismo conjunto de entrada; no consulta reloj ni estado externo.
func Aggregate(transactions []*entity.PettyCashTransaction, from, to time.Time) Totals {
	t := Totals{
		TotalReplenishments: decimal.Zero,
		TotalDisbursements:  decimal.Zero,
		NetChange:           decimal.Zero,
	}
	for _, txn := range transactions {
		if txn.TransactionDate.Before(from) || !txn.TransactionDate.Before(to) {
			continue
		}
		switch txn.Type {
		case entity.TransactionTypeReplenishment:
			t.TotalReplenishments = t.TotalReplenishments.Add(txn.Amount)
			t.NetChange = t.NetChange.Add(txn.Amount)
		case entity.TransactionTypeDisbursement:
			t.TotalDisbursements = t.TotalDisbursements.Add(txn.Amount)
			t.NetChange = t.NetChange.Sub(txn.Amount)
		case entity.TransactionTypeAdjustment:
			t.NetChange = t.NetChange.Add(txn.Amount)
		}
		t.Count++
	}
	return t
}
