package dto

import "time"

// CreateLocationRequest entrada para crear una sede o bodega.
type CreateLocationRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Address   string `json:"address"`
	IsHQ      bool   `json:"is_hq"`
	IsDefault bool   `json:"is_default"`
}

// LocationResponse salida de una sede.
type LocationResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsHQ      bool      `json:"is_hq"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
