package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `c.id, c.name, c.surname, c.dni, c.phone, c.email, c.address, c.city, c.active, c.created_at, c.updated_at`

var clientSearch = map[string]searchColumn{
	repository.ClientFieldDNI:  {Expr: "c.dni", Text: true},
	repository.ClientFieldName: {Expr: "c.name", Text: true},
}

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.DNI, &c.Phone, &c.Email, &c.Address, &c.City,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, surname, dni, phone, email, address, city, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Surname, c.DNI, c.Phone, c.Email, c.Address, c.City, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	return wrapErr("insert client", err)
}

// GetByID obtiene un cliente activo por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return getActive(ctx, r.q, newActiveQuery("clients", "c").Where("c.id = ?", id), clientColumns, scanClient, "get client")
}

// GetByDNI obtiene un cliente activo por cédula.
func (r *ClientRepo) GetByDNI(ctx context.Context, dni string) (*entity.Client, error) {
	return getActive(ctx, r.q, newActiveQuery("clients", "c").Where("c.dni = ?", dni), clientColumns, scanClient, "get client by dni")
}

// FindByEmail busca por email incluyendo inactivos.
func (r *ClientRepo) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients c WHERE c.email = $1 LIMIT 1`
	c, err := scanClient(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("find client by email", err)
	}
	return c, nil
}

// Update reescribe todos los campos editables, incluido active (revivir).
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, surname = $3, dni = $4, phone = $5, email = $6, address = $7, city = $8,
			active = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Surname, c.DNI, c.Phone, c.Email, c.Address, c.City, c.Active, c.UpdatedAt,
	)
	return expectOne(tag, err, "update client")
}

// SoftDelete marca el cliente como inactivo.
func (r *ClientRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.q, "clients", id, "delete client")
}

// List lista clientes activos.
func (r *ClientRepo) List(ctx context.Context, page domain.Page) ([]*entity.Client, int, error) {
	return listActive(ctx, r.q, newActiveQuery("clients", "c"), clientColumns, page, scanClient, "list clients")
}

// Search busca por cédula (exacta) o nombre (parcial).
func (r *ClientRepo) Search(ctx context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Client, int, error) {
	aq, err := newActiveQuery("clients", "c").Filter(clientSearch, filter)
	if err != nil {
		return nil, 0, err
	}
	return listActive(ctx, r.q, aq, clientColumns, page, scanClient, "search clients")
}
