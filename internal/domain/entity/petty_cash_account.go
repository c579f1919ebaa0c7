package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PettyCashAccount representa una caja menor de la empresa (fondo de efectivo
// asignado a una sede, con custodio responsable).
//
// CurrentBalance solo se muta a través de transacciones aceptadas; nunca baja
// de cero por un egreso. InitialBalance es inmutable después de la creación.
// La desactivación es un flag, no un borrado: el historial contable se conserva.
type PettyCashAccount struct {
	ID             string
	CompanyID      string
	LocationID     string
	AccountCode    string // código legible, único por empresa (ej. "CM-PLANTA-01")
	Name           string
	Currency       string // código ISO 4217
	CurrentBalance decimal.Decimal
	InitialBalance decimal.Decimal
	MaxLimit       *decimal.Decimal // tope sugerido del fondo (advertencia, no bloqueo)
	MinBalance     *decimal.Decimal // umbral de saldo bajo (dispara alerta de reposición)
	CustodianName  string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
