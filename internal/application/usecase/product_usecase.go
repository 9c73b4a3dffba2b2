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

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El título se guarda normalizado y es único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	title := domain.NormalizeText(in.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := nonNegative("price", in.Price); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Title:       title,
		Code:        strings.TrimSpace(in.Code),
		Description: in.Description,
		Stock:       in.Stock,
		Price:       in.Price,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByTerm obtiene un producto por UUID o por título.
func (uc *ProductUseCase) GetByTerm(ctx context.Context, term string) (*dto.ProductResponse, error) {
	var (
		product *entity.Product
		err     error
	)
	if _, perr := uuid.Parse(term); perr == nil {
		product, err = uc.repo.GetByID(ctx, term)
	} else {
		product, err = uc.repo.GetByTitle(ctx, domain.NormalizeText(term))
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos activos.
func (uc *ProductUseCase) List(ctx context.Context, page domain.Page) (*dto.ListResponse[dto.ProductResponse], error) {
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, productItem)
}

// Search busca productos por título (subcadena).
func (uc *ProductUseCase) Search(ctx context.Context, term string, page domain.Page) (*dto.ListResponse[dto.ProductResponse], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	filter := domain.SearchFilter{Field: repository.ProductFieldTitle, Term: term, Mode: domain.SearchFuzzy}
	list, total, err := uc.repo.Search(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, productItem)
}

// Update actualiza parcialmente un producto activo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		product.Title = domain.NormalizeText(*in.Title)
	}
	if in.Code != nil {
		product.Code = strings.TrimSpace(*in.Code)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		if err := nonNegative("price", *in.Price); err != nil {
			return nil, err
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete desactiva el producto (borrado lógico).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.SoftDelete(ctx, id)
}

func productItem(p *entity.Product) dto.ProductResponse { return *toProductResponse(p) }

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Code:        p.Code,
		Description: p.Description,
		Stock:       p.Stock,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
