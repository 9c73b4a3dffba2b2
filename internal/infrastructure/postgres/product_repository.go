package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.title, p.code, p.description, p.stock, p.price, p.active, p.created_at, p.updated_at`

var productSearch = map[string]searchColumn{
	repository.ProductFieldTitle: {Expr: "p.title", Text: true},
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Title, &p.Code, &p.Description, &p.Stock, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, title, code, description, stock, price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Title, p.Code, p.Description, p.Stock, p.Price, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	return wrapErr("insert product", err)
}

// GetByID obtiene un producto activo por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return getActive(ctx, r.q, newActiveQuery("products", "p").Where("p.id = ?", id), productColumns, scanProduct, "get product")
}

// GetByTitle obtiene un producto activo por título normalizado.
func (r *ProductRepo) GetByTitle(ctx context.Context, title string) (*entity.Product, error) {
	return getActive(ctx, r.q, newActiveQuery("products", "p").Where("p.title = ?", title), productColumns, scanProduct, "get product by title")
}

// Update actualiza un producto activo.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET title = $2, code = $3, description = $4, stock = $5, price = $6, updated_at = $7
		WHERE id = $1 AND active = true`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Title, p.Code, p.Description, p.Stock, p.Price, p.UpdatedAt)
	return expectOne(tag, err, "update product")
}

// SoftDelete marca el producto como inactivo.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.q, "products", id, "delete product")
}

// List lista productos activos.
func (r *ProductRepo) List(ctx context.Context, page domain.Page) ([]*entity.Product, int, error) {
	return listActive(ctx, r.q, newActiveQuery("products", "p"), productColumns, page, scanProduct, "list products")
}

// Search busca por título.
func (r *ProductRepo) Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Product, int, error) {
	aq, err := newActiveQuery("products", "p").Filter(productSearch, filter)
	if err != nil {
		return nil, 0, err
	}
	return listActive(ctx, r.q, aq, productColumns, page, scanProduct, "search products")
}
