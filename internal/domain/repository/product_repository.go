package repository

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
)

// ProductFieldTitle campo de búsqueda de productos.
const ProductFieldTitle = "title"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByTitle(ctx context.Context, title string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, page domain.Page) ([]*entity.Product, int, error)
	Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Product, int, error)
}
