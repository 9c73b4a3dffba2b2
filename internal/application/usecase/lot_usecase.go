package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// LotUseCase casos de uso CRUD para lotes de producción.
type LotUseCase struct {
	repo repository.LotRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository) *LotUseCase {
	return &LotUseCase{repo: repo}
}

// Create registra un lote. Code es único (la DB lo garantiza con 23505 -> ErrDuplicate).
func (uc *LotUseCase) Create(ctx context.Context, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	for field, v := range map[string]decimal.Decimal{
		"quantity_liters": in.QuantityLiters,
		"discount":        in.Discount,
		"cost_liter":      in.CostLiter,
		"lot_total_cost":  in.LotTotalCost,
	} {
		if err := nonNegative(field, v); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	lot := &entity.Lot{
		ID:             uuid.New().String(),
		Code:           strings.TrimSpace(in.Code),
		QuantityLiters: in.QuantityLiters,
		Discount:       in.Discount,
		DiscountReason: in.DiscountReason,
		TypeLot:        strings.TrimSpace(in.TypeLot),
		CostLiter:      in.CostLiter,
		ReusedBottles:  in.ReusedBottles,
		LotTotalCost:   in.LotTotalCost,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// GetByID obtiene un lote activo sin relaciones.
func (uc *LotUseCase) GetByID(ctx context.Context, id string) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(ctx, id, repository.LotInclude{})
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return toLotResponse(lot), nil
}

// List lista lotes activos, los más recientes primero.
func (uc *LotUseCase) List(ctx context.Context, page domain.Page) (*dto.ListResponse[dto.LotResponse], error) {
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, lotItem)
}

// Search busca por código o por tipo de lote (igualdad). Otro campo -> ErrInvalidInput.
func (uc *LotUseCase) Search(ctx context.Context, field, term string, page domain.Page) (*dto.ListResponse[dto.LotResponse], error) {
	if field != repository.LotFieldCode && field != repository.LotFieldType {
		return nil, domain.ErrInvalidInput
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	filter := domain.SearchFilter{Field: field, Term: term, Mode: domain.SearchExact}
	list, total, err := uc.repo.Search(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, lotItem)
}

// Update actualiza parcialmente un lote activo.
func (uc *LotUseCase) Update(ctx context.Context, id string, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(ctx, id, repository.LotInclude{})
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		lot.Code = strings.TrimSpace(*in.Code)
	}
	if in.QuantityLiters != nil {
		lot.QuantityLiters = *in.QuantityLiters
	}
	if in.Discount != nil {
		lot.Discount = *in.Discount
	}
	if in.DiscountReason != nil {
		lot.DiscountReason = *in.DiscountReason
	}
	if in.TypeLot != nil {
		lot.TypeLot = strings.TrimSpace(*in.TypeLot)
	}
	if in.CostLiter != nil {
		lot.CostLiter = *in.CostLiter
	}
	if in.ReusedBottles != nil {
		lot.ReusedBottles = *in.ReusedBottles
	}
	if in.LotTotalCost != nil {
		lot.LotTotalCost = *in.LotTotalCost
	}
	for field, v := range map[string]decimal.Decimal{
		"quantity_liters": lot.QuantityLiters,
		"discount":        lot.Discount,
		"cost_liter":      lot.CostLiter,
		"lot_total_cost":  lot.LotTotalCost,
	} {
		if err := nonNegative(field, v); err != nil {
			return nil, err
		}
	}
	lot.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, lot); err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// Delete desactiva el lote (borrado lógico).
func (uc *LotUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.SoftDelete(ctx, id)
}

func lotItem(l *entity.Lot) dto.LotResponse { return *toLotResponse(l) }

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	if l == nil {
		return nil
	}
	return &dto.LotResponse{
		ID:             l.ID,
		Code:           l.Code,
		QuantityLiters: l.QuantityLiters,
		Discount:       l.Discount,
		DiscountReason: l.DiscountReason,
		TypeLot:        l.TypeLot,
		CostLiter:      l.CostLiter,
		ReusedBottles:  l.ReusedBottles,
		LotTotalCost:   l.LotTotalCost,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// ToLotResponse expone el mapeo para el reporte de costo de lote.
func ToLotResponse(l *entity.Lot) *dto.LotResponse { return toLotResponse(l) }
