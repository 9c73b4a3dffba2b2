package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// SaleUseCase casos de uso CRUD para ventas. Las escrituras resuelven las referencias
// y persisten la venta en una sola transacción.
type SaleUseCase struct {
	repo repository.SaleRepository
	tx   TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, tx TxRunner) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx}
}

// Create registra una venta. Cliente, lote y producto deben existir y estar activos.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := nonNegative("total_price", in.TotalPrice); err != nil {
		return nil, err
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		ClientID:   in.ClientID,
		ProductID:  in.ProductID,
		LotID:      in.LotID,
		Quantity:   in.Quantity,
		TotalPrice: in.TotalPrice,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := resolveSaleRefs(ctx, repos, in.ClientID, in.LotID, in.ProductID); err != nil {
			return err
		}
		return repos.Sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// resolveSaleRefs verifica que las referencias existan y estén activas; id vacío se omite.
func resolveSaleRefs(ctx context.Context, repos TxRepos, clientID, lotID, productID string) error {
	if clientID != "" {
		c, err := repos.Clients.GetByID(ctx, clientID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
	}
	if lotID != "" {
		l, err := repos.Lots.GetByID(ctx, lotID, repository.LotInclude{})
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
	}
	if productID != "" {
		p, err := repos.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// GetByID obtiene una venta activa.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista ventas activas.
func (uc *SaleUseCase) List(ctx context.Context, page domain.Page) (*dto.ListResponse[dto.SaleResponse], error) {
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, saleItem)
}

// Search busca por producto (id exacto) o por nombre de cliente (subcadena).
func (uc *SaleUseCase) Search(ctx context.Context, field, term string, page domain.Page) (*dto.ListResponse[dto.SaleResponse], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	var filter domain.SearchFilter
	switch field {
	case repository.SaleFieldProduct:
		if _, err := uuid.Parse(term); err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter = domain.SearchFilter{Field: field, Term: term, Mode: domain.SearchExact}
	case repository.SaleFieldClient:
		filter = domain.SearchFilter{Field: field, Term: term, Mode: domain.SearchFuzzy}
	default:
		return nil, domain.ErrInvalidInput
	}
	list, total, err := uc.repo.Search(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, saleItem)
}

// Update actualiza parcialmente una venta; las referencias que cambian se vuelven a resolver.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	var clientID, lotID, productID string
	if in.ClientID != nil {
		clientID = *in.ClientID
	}
	if in.LotID != nil {
		lotID = *in.LotID
	}
	if in.ProductID != nil {
		productID = *in.ProductID
	}
	if clientID != "" {
		sale.ClientID = clientID
	}
	if lotID != "" {
		sale.LotID = lotID
	}
	if productID != "" {
		sale.ProductID = productID
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		sale.Quantity = *in.Quantity
	}
	if in.TotalPrice != nil {
		if err := nonNegative("total_price", *in.TotalPrice); err != nil {
			return nil, err
		}
		sale.TotalPrice = *in.TotalPrice
	}
	sale.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := resolveSaleRefs(ctx, repos, clientID, lotID, productID); err != nil {
			return err
		}
		return repos.Sales.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete desactiva la venta (borrado lógico).
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.SoftDelete(ctx, id)
}

func saleItem(s *entity.Sale) dto.SaleResponse { return *toSaleResponse(s) }

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		ClientID:   s.ClientID,
		ProductID:  s.ProductID,
		LotID:      s.LotID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
