package entity

import "time"

// Company representa una empresa de confección registrada en la plataforma (multi-tenant).
type Company struct {
	ID        string
	NIT       string
	Name      string
	Address   string
	Phone     string
	Email     string
	Currency  string // código ISO 4217, ej. "COP"
	Plan      string // "basico" | "pro"
	CreatedAt time.Time
	UpdatedAt time.Time
}
