package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `s.id, s.client_id, s.product_id, s.lot_id, s.quantity, s.total_price, s.active, s.created_at, s.updated_at`

var saleSearch = map[string]searchColumn{
	repository.SaleFieldProduct: {Expr: "s.product_id"},
	repository.SaleFieldClient: {
		Expr: "c.name",
		Text: true,
		Join: "JOIN clients c ON c.id = s.client_id",
	},
}

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(&s.ID, &s.ClientID, &s.ProductID, &s.LotID, &s.Quantity, &s.TotalPrice, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, product_id, lot_id, quantity, total_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.ClientID, s.ProductID, s.LotID, s.Quantity, s.TotalPrice, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	return wrapErr("insert sale", err)
}

// GetByID obtiene una venta activa.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	return getActive(ctx, r.q, newActiveQuery("sales", "s").Where("s.id = ?", id), saleColumns, scanSale, "get sale")
}

// Update actualiza una venta activa.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales SET client_id = $2, product_id = $3, lot_id = $4, quantity = $5, total_price = $6, updated_at = $7
		WHERE id = $1 AND active = true`
	tag, err := r.q.Exec(ctx, query, s.ID, s.ClientID, s.ProductID, s.LotID, s.Quantity, s.TotalPrice, s.UpdatedAt)
	return expectOne(tag, err, "update sale")
}

// SoftDelete marca la venta como inactiva.
func (r *SaleRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.q, "sales", id, "delete sale")
}

// List lista ventas activas.
func (r *SaleRepo) List(ctx context.Context, page domain.Page) ([]*entity.Sale, int, error) {
	return listActive(ctx, r.q, newActiveQuery("sales", "s"), saleColumns, page, scanSale, "list sales")
}

// Search busca por producto (id exacto) o por nombre de cliente (parcial).
// El cliente se une sin filtrar su estado: una venta activa sigue siendo visible aunque el cliente no lo esté.
func (r *SaleRepo) Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Sale, int, error) {
	aq, err := newActiveQuery("sales", "s").Filter(saleSearch, filter)
	if err != nil {
		return nil, 0, err
	}
	return listActive(ctx, r.q, aq, saleColumns, page, scanSale, "search sales")
}
