package usecase

import (
	"context"

	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Clients     repository.ClientRepository
	Products    repository.ProductRepository
	Lots        repository.LotRepository
	Expenses    repository.ExpenseRepository
	LotExpenses repository.LotExpenseRepository
	Sales       repository.SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción; Commit si fn no falla, Rollback si falla.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
