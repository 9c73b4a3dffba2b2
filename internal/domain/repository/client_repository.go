package repository

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
)

// Campos de búsqueda de clientes.
const (
	ClientFieldDNI  = "dni"
	ClientFieldName = "name"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe o está inactivo.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByDNI(ctx context.Context, dni string) (*entity.Client, error)
	// FindByEmail incluye inactivos: lo usa Create para revivir un cliente borrado.
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, page domain.Page) ([]*entity.Client, int, error)
	Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Client, int, error)
}
