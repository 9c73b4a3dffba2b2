package entity

import "time"

// Client cliente del negocio. Name, Surname y Email se guardan normalizados en minúsculas.
type Client struct {
	ID        string
	Name      string
	Surname   string
	DNI       string // cédula
	Phone     string
	Email     string // único
	Address   string
	City      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
