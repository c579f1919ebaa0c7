package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePettyCashAccountRequest entrada para abrir una caja menor.
// El saldo inicial queda como CurrentBalance y nunca vuelve a editarse.
type CreatePettyCashAccountRequest struct {
	AccountCode    string           `json:"account_code" validate:"required,min=1,max=50"`
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	LocationID     string           `json:"location_id" validate:"required,uuid"`
	Currency       string           `json:"currency" validate:"omitempty,len=3"`
	InitialBalance decimal.Decimal  `json:"initial_balance"`
	MaxLimit       *decimal.Decimal `json:"max_limit,omitempty"`
	MinBalance     *decimal.Decimal `json:"min_balance,omitempty"`
	CustodianName  string           `json:"custodian_name"`
}

// PettyCashAccountResponse salida de una caja menor con su clasificación.
type PettyCashAccountResponse struct {
	ID             string           `json:"id"`
	AccountCode    string           `json:"account_code"`
	Name           string           `json:"name"`
	LocationID     string           `json:"location_id"`
	Currency       string           `json:"currency"`
	CurrentBalance decimal.Decimal  `json:"current_balance"`
	InitialBalance decimal.Decimal  `json:"initial_balance"`
	MaxLimit       *decimal.Decimal `json:"max_limit,omitempty"`
	MinBalance     *decimal.Decimal `json:"min_balance,omitempty"`
	CustodianName  string           `json:"custodian_name"`
	IsActive       bool             `json:"is_active"`
	Status         string           `json:"status"` // NORMAL | LOW_BALANCE
	CreatedAt      time.Time        `json:"created_at"`
}

// CreateTransactionRequest body para registrar un asiento de caja menor.
// AcknowledgeOverLimit: el cliente confirma una reposición que supera MaxLimit
// (advertencia del dominio, no bloqueo).
type CreateTransactionRequest struct {
	Type                 string          `json:"type" validate:"required,oneof=REPLENISHMENT DISBURSEMENT ADJUSTMENT"`
	Amount               decimal.Decimal `json:"amount"`
	TransactionDate      time.Time       `json:"transaction_date" validate:"required"`
	Category             string          `json:"category"` // obligatoria en DISBURSEMENT
	RecipientName        string          `json:"recipient_name,omitempty"`
	ReceiptNumber        string          `json:"receipt_number,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	AcknowledgeOverLimit bool            `json:"acknowledge_over_limit,omitempty"`
}

// PettyCashTransactionResponse salida de un asiento (inmutable).
type PettyCashTransactionResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	TransactionCode string          `json:"transaction_code"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceBefore   decimal.Decimal `json:"balance_before"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	TransactionDate time.Time       `json:"transaction_date"`
	Category        string          `json:"category,omitempty"`
	RecipientName   string          `json:"recipient_name,omitempty"`
	ReceiptNumber   string          `json:"receipt_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	LowBalanceAfter bool            `json:"low_balance_after"`
	OverMaxLimit    bool            `json:"over_max_limit"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PeriodSummaryResponse agregado de movimientos en un período [from, to).
type PeriodSummaryResponse struct {
	AccountID           string          `json:"account_id"`
	From                time.Time       `json:"from"`
	To                  time.Time       `json:"to"`
	TotalReplenishments decimal.Decimal `json:"total_replenishments"`
	TotalDisbursements  decimal.Decimal `json:"total_disbursements"`
	NetChange           decimal.Decimal `json:"net_change"`
	TransactionCount    int             `json:"transaction_count"`
}
