package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Lotes-api/internal/application/dto"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// LotExpenseUseCase asignación de gastos a lotes.
type LotExpenseUseCase struct {
	repo repository.LotExpenseRepository
	tx   TxRunner
}

// NewLotExpenseUseCase construye el caso de uso.
func NewLotExpenseUseCase(repo repository.LotExpenseRepository, tx TxRunner) *LotExpenseUseCase {
	return &LotExpenseUseCase{repo: repo, tx: tx}
}

// Create asigna un gasto activo a un lote activo. El valor se copia del gasto en este momento,
// dentro de la misma transacción que lee el gasto.
func (uc *LotExpenseUseCase) Create(ctx context.Context, in dto.CreateLotExpenseRequest) (*dto.LotExpenseResponse, error) {
	var assignment *entity.LotExpense
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		lot, err := repos.Lots.GetByID(ctx, in.LotID, repository.LotInclude{})
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		expense, err := repos.Expenses.GetByID(ctx, in.ExpenseID)
		if err != nil {
			return err
		}
		if expense == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		assignment = &entity.LotExpense{
			ID:        uuid.New().String(),
			LotID:     lot.ID,
			ExpenseID: expense.ID,
			Value:     expense.Value,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
			Expense:   expense,
		}
		return repos.LotExpenses.Create(ctx, assignment)
	})
	if err != nil {
		return nil, err
	}
	return toLotExpenseResponse(assignment), nil
}

// GetByID obtiene una asignación activa.
func (uc *LotExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.LotExpenseResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toLotExpenseResponse(a), nil
}

// List lista asignaciones activas.
func (uc *LotExpenseUseCase) List(ctx context.Context, page domain.Page) (*dto.ListResponse[dto.LotExpenseResponse], error) {
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, lotExpenseItem)
}

// Update mueve la asignación a otro lote activo o corrige su valor.
func (uc *LotExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateLotExpenseRequest) (*dto.LotExpenseResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.Value != nil {
		if err := nonNegative("value", *in.Value); err != nil {
			return nil, err
		}
		a.Value = *in.Value
	}
	a.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(repos TxRepos) error {
		if in.LotID != nil && *in.LotID != a.LotID {
			lot, err := repos.Lots.GetByID(ctx, *in.LotID, repository.LotInclude{})
			if err != nil {
				return err
			}
			if lot == nil {
				return domain.ErrNotFound
			}
			a.LotID = lot.ID
		}
		return repos.LotExpenses.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return toLotExpenseResponse(a), nil
}

// Delete desactiva la asignación; deja de contar en los reportes desde ahora.
func (uc *LotExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.SoftDelete(ctx, id)
}

func lotExpenseItem(a *entity.LotExpense) dto.LotExpenseResponse { return *toLotExpenseResponse(a) }

func toLotExpenseResponse(a *entity.LotExpense) *dto.LotExpenseResponse {
	if a == nil {
		return nil
	}
	return &dto.LotExpenseResponse{
		ID:        a.ID,
		LotID:     a.LotID,
		ExpenseID: a.ExpenseID,
		Value:     a.Value,
		Expense:   toExpenseResponse(a.Expense),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToLotExpenseResponse expone el mapeo para el reporte de costo de lote.
func ToLotExpenseResponse(a *entity.LotExpense) *dto.LotExpenseResponse { return toLotExpenseResponse(a) }
