package dto

import "time"

// CreateClientRequest entrada para crear (o revivir) un cliente.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Surname string `json:"surname" validate:"required,min=1,max=120"`
	DNI     string `json:"dni" validate:"required,numeric,max=20"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"omitempty,max=200"`
	City    string `json:"city" validate:"omitempty,max=100"`
}

// UpdateClientRequest actualización parcial.
type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	Surname *string `json:"surname" validate:"omitempty,min=1,max=120"`
	DNI     *string `json:"dni" validate:"omitempty,numeric,max=20"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=200"`
	City    *string `json:"city" validate:"omitempty,max=100"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	DNI       string    `json:"dni"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
