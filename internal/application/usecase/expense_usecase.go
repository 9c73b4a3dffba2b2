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

// ExpenseUseCase casos de uso CRUD para gastos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Una descripción ya usada por un gasto inactivo lo reactiva.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	description := domain.NormalizeText(in.Description)
	if description == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := nonNegative("value", in.Value); err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindByDescription(ctx, description)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if existing != nil {
		if existing.Active {
			return nil, domain.ErrDuplicate
		}
		existing.Value = in.Value
		existing.Type = domain.NormalizeText(in.Type)
		existing.Active = true
		existing.UpdatedAt = now
		if err := uc.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return toExpenseResponse(existing), nil
	}

	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: description,
		Value:       in.Value,
		Type:        domain.NormalizeText(in.Type),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto activo.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos activos.
func (uc *ExpenseUseCase) List(ctx context.Context, page domain.Page) (*dto.ListResponse[dto.ExpenseResponse], error) {
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, expenseItem)
}

// SearchByType lista los gastos activos de un tipo.
func (uc *ExpenseUseCase) SearchByType(ctx context.Context, expenseType string, page domain.Page) (*dto.ListResponse[dto.ExpenseResponse], error) {
	expenseType = domain.NormalizeText(expenseType)
	if expenseType == "" {
		return nil, domain.ErrInvalidInput
	}
	filter := domain.SearchFilter{Field: repository.ExpenseFieldType, Term: expenseType, Mode: domain.SearchExact}
	list, total, err := uc.repo.Search(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, expenseItem)
}

// Update actualiza parcialmente un gasto. Las asignaciones a lotes conservan su valor original.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		expense.Description = domain.NormalizeText(*in.Description)
		if expense.Description == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Value != nil {
		if err := nonNegative("value", *in.Value); err != nil {
			return nil, err
		}
		expense.Value = *in.Value
	}
	if in.Type != nil {
		expense.Type = domain.NormalizeText(*in.Type)
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete desactiva el gasto (borrado lógico).
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.SoftDelete(ctx, strings.TrimSpace(id))
}

func expenseItem(e *entity.Expense) dto.ExpenseResponse { return *toExpenseResponse(e) }

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Value:       e.Value,
		Type:        e.Type,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
