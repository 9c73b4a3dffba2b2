package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/Lotes-api/internal/application/usecase"
	"github.com/jhoicas/Lotes-api/internal/domain"
	"github.com/jhoicas/Lotes-api/internal/domain/entity"
	"github.com/jhoicas/Lotes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

func paginate[T any](all []*T, page domain.Page) []*T {
	if page.Offset >= len(all) {
		return nil
	}
	end := page.Offset + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[page.Offset:end]
}

// fakeTx ejecuta fn directamente con los repos en memoria.
type fakeTx struct {
	repos usecase.TxRepos
}

func (f fakeTx) Run(_ context.Context, fn func(usecase.TxRepos) error) error {
	return fn(f.repos)
}

type fakeClientRepo struct {
	items      map[string]*entity.Client
	lastFilter domain.SearchFilter
	err        error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{items: map[string]*entity.Client{}}
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	if f.err != nil {
		return f.err
	}
	cp := *c
	f.items[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.items[id]
	if !ok || !c.Active {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) GetByDNI(_ context.Context, dni string) (*entity.Client, error) {
	for _, c := range f.items {
		if c.Active && c.DNI == dni {
			cp := *c
			return &cp, nil
		}
	}
	return nil, f.err
}

func (f *fakeClientRepo) FindByEmail(_ context.Context, email string) (*entity.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.items {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	f.items[c.ID] = &cp
	return f.err
}

func (f *fakeClientRepo) SoftDelete(_ context.Context, id string) error {
	c, ok := f.items[id]
	if !ok || !c.Active {
		return domain.ErrNotFound
	}
	c.Active = false
	return nil
}

func (f *fakeClientRepo) active() []*entity.Client {
	var out []*entity.Client
	for _, c := range f.items {
		if c.Active {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeClientRepo) List(_ context.Context, page domain.Page) ([]*entity.Client, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	all := f.active()
	return paginate(all, page), len(all), nil
}

func (f *fakeClientRepo) Search(_ context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Client, int, error) {
	f.lastFilter = filter
	var all []*entity.Client
	for _, c := range f.active() {
		switch filter.Field {
		case repository.ClientFieldDNI:
			if c.DNI == filter.Term {
				all = append(all, c)
			}
		case repository.ClientFieldName:
			if strings.Contains(c.Name, strings.ToLower(filter.Term)) {
				all = append(all, c)
			}
		}
	}
	return paginate(all, page), len(all), nil
}

type fakeExpenseRepo struct {
	items map[string]*entity.Expense
	err   error
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{items: map[string]*entity.Expense{}}
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	if f.err != nil {
		return f.err
	}
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeExpenseRepo) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.items[id]
	if !ok || !e.Active {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeExpenseRepo) FindByDescription(_ context.Context, description string) (*entity.Expense, error) {
	for _, e := range f.items {
		if e.Description == description {
			cp := *e
			return &cp, nil
		}
	}
	return nil, f.err
}

func (f *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	cp := *e
	f.items[e.ID] = &cp
	return f.err
}

func (f *fakeExpenseRepo) SoftDelete(_ context.Context, id string) error {
	e, ok := f.items[id]
	if !ok || !e.Active {
		return domain.ErrNotFound
	}
	e.Active = false
	return nil
}

func (f *fakeExpenseRepo) List(_ context.Context, page domain.Page) ([]*entity.Expense, int, error) {
	var all []*entity.Expense
	for _, e := range f.items {
		if e.Active {
			all = append(all, e)
		}
	}
	return paginate(all, page), len(all), f.err
}

func (f *fakeExpenseRepo) Search(_ context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Expense, int, error) {
	var all []*entity.Expense
	for _, e := range f.items {
		if e.Active && e.Type == filter.Term {
			all = append(all, e)
		}
	}
	return paginate(all, page), len(all), f.err
}

type fakeLotRepo struct {
	items      map[string]*entity.Lot
	lastFilter domain.SearchFilter
}

func newFakeLotRepo() *fakeLotRepo {
	return &fakeLotRepo{items: map[string]*entity.Lot{}}
}

func (f *fakeLotRepo) Create(_ context.Context, l *entity.Lot) error {
	cp := *l
	f.items[l.ID] = &cp
	return nil
}

func (f *fakeLotRepo) GetByID(_ context.Context, id string, _ repository.LotInclude) (*entity.Lot, error) {
	l, ok := f.items[id]
	if !ok || !l.Active {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLotRepo) Update(_ context.Context, l *entity.Lot) error {
	cp := *l
	f.items[l.ID] = &cp
	return nil
}

func (f *fakeLotRepo) SoftDelete(_ context.Context, id string) error {
	l, ok := f.items[id]
	if !ok || !l.Active {
		return domain.ErrNotFound
	}
	l.Active = false
	return nil
}

func (f *fakeLotRepo) List(_ context.Context, page domain.Page) ([]*entity.Lot, int, error) {
	var all []*entity.Lot
	for _, l := range f.items {
		if l.Active {
			all = append(all, l)
		}
	}
	return paginate(all, page), len(all), nil
}

func (f *fakeLotRepo) Search(_ context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Lot, int, error) {
	f.lastFilter = filter
	var all []*entity.Lot
	for _, l := range f.items {
		if !l.Active {
			continue
		}
		if (filter.Field == repository.LotFieldCode && l.Code == filter.Term) ||
			(filter.Field == repository.LotFieldType && l.TypeLot == filter.Term) {
			all = append(all, l)
		}
	}
	return paginate(all, page), len(all), nil
}

type fakeLotExpenseRepo struct {
	items map[string]*entity.LotExpense
}

func newFakeLotExpenseRepo() *fakeLotExpenseRepo {
	return &fakeLotExpenseRepo{items: map[string]*entity.LotExpense{}}
}

func (f *fakeLotExpenseRepo) Create(_ context.Context, a *entity.LotExpense) error {
	cp := *a
	cp.Expense = nil
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeLotExpenseRepo) GetByID(_ context.Context, id string) (*entity.LotExpense, error) {
	a, ok := f.items[id]
	if !ok || !a.Active {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeLotExpenseRepo) Update(_ context.Context, a *entity.LotExpense) error {
	cp := *a
	f.items[a.ID] = &cp
	return nil
}

func (f *fakeLotExpenseRepo) SoftDelete(_ context.Context, id string) error {
	a, ok := f.items[id]
	if !ok || !a.Active {
		return domain.ErrNotFound
	}
	a.Active = false
	return nil
}

func (f *fakeLotExpenseRepo) List(_ context.Context, page domain.Page) ([]*entity.LotExpense, int, error) {
	var all []*entity.LotExpense
	for _, a := range f.items {
		if a.Active {
			all = append(all, a)
		}
	}
	return paginate(all, page), len(all), nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.items[id]
	if !ok || !p.Active {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByTitle(_ context.Context, title string) (*entity.Product, error) {
	for _, p := range f.items {
		if p.Active && p.Title == title {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, id string) error {
	p, ok := f.items[id]
	if !ok || !p.Active {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, page domain.Page) ([]*entity.Product, int, error) {
	var all []*entity.Product
	for _, p := range f.items {
		if p.Active {
			all = append(all, p)
		}
	}
	return paginate(all, page), len(all), nil
}

func (f *fakeProductRepo) Search(_ context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Product, int, error) {
	var all []*entity.Product
	for _, p := range f.items {
		if p.Active && strings.Contains(p.Title, strings.ToLower(filter.Term)) {
			all = append(all, p)
		}
	}
	return paginate(all, page), len(all), nil
}

type fakeSaleRepo struct {
	items      map[string]*entity.Sale
	lastFilter domain.SearchFilter
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{items: map[string]*entity.Sale{}}
}

func (f *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := f.items[id]
	if !ok || !s.Active {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) Update(_ context.Context, s *entity.Sale) error {
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) SoftDelete(_ context.Context, id string) error {
	s, ok := f.items[id]
	if !ok || !s.Active {
		return domain.ErrNotFound
	}
	s.Active = false
	return nil
}

func (f *fakeSaleRepo) List(_ context.Context, page domain.Page) ([]*entity.Sale, int, error) {
	var all []*entity.Sale
	for _, s := range f.items {
		if s.Active {
			all = append(all, s)
		}
	}
	return paginate(all, page), len(all), nil
}

func (f *fakeSaleRepo) Search(_ context.Context, filter domain.SearchFilter, page domain.Page) ([]*entity.Sale, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}
