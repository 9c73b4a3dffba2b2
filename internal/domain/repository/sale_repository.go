package repository

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
)

// Campos de búsqueda de ventas.
const (
	SaleFieldProduct = "product" // id de producto, exacto
	SaleFieldClient  = "client"  // nombre del cliente, subcadena
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, page domain.Page) ([]*entity.Sale, int, error)
	Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Sale, int, error)
}
