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

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Si existe uno inactivo con el mismo email se reactiva con los datos nuevos.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	email := domain.NormalizeText(in.Email)
	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if existing != nil {
		if existing.Active {
			return nil, domain.ErrDuplicate
		}
		applyClient(existing, in)
		existing.Active = true
		existing.UpdatedAt = now
		if err := uc.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return toClientResponse(existing), nil
	}

	client := &entity.Client{
		ID:        uuid.New().String(),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyClient(client, in)
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func applyClient(c *entity.Client, in dto.CreateClientRequest) {
	c.Name = domain.NormalizeText(in.Name)
	c.Surname = domain.NormalizeText(in.Surname)
	c.DNI = strings.TrimSpace(in.DNI)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Email = domain.NormalizeText(in.Email)
	c.Address = strings.TrimSpace(in.Address)
	c.City = strings.TrimSpace(in.City)
}

// GetByTerm busca un cliente por UUID o, si el término no es un UUID, por cédula.
func (uc *ClientUseCase) GetByTerm(ctx context.Context, term string) (*dto.ClientResponse, error) {
	var (
		client *entity.Client
		err    error
	)
	if _, perr := uuid.Parse(term); perr == nil {
		client, err = uc.repo.GetByID(ctx, term)
	} else {
		client, err = uc.repo.GetByDNI(ctx, strings.TrimSpace(term))
	}
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes activos.
func (uc *ClientUseCase) List(ctx context.Context, page domain.Page) (*dto.ListResponse[dto.ClientResponse], error) {
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, clientItem)
}

// Search busca por cédula exacta si el término es numérico; si no, por nombre (subcadena).
func (uc *ClientUseCase) Search(ctx context.Context, term string, page domain.Page) (*dto.ListResponse[dto.ClientResponse], error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	filter := domain.SearchFilter{Field: repository.ClientFieldName, Term: term, Mode: domain.DetectSearchMode(term)}
	if filter.Mode == domain.SearchExact {
		filter.Field = repository.ClientFieldDNI
	}
	list, total, err := uc.repo.Search(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return toList(list, total, page, clientItem)
}

// Update actualiza parcialmente un cliente activo.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = domain.NormalizeText(*in.Name)
	}
	if in.Surname != nil {
		client.Surname = domain.NormalizeText(*in.Surname)
	}
	if in.DNI != nil {
		client.DNI = strings.TrimSpace(*in.DNI)
	}
	if in.Phone != nil {
		client.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		client.Email = domain.NormalizeText(*in.Email)
	}
	if in.Address != nil {
		client.Address = strings.TrimSpace(*in.Address)
	}
	if in.City != nil {
		client.City = strings.TrimSpace(*in.City)
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete desactiva el cliente (borrado lógico).
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.SoftDelete(ctx, id)
}

func clientItem(c *entity.Client) dto.ClientResponse { return *toClientResponse(c) }

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		DNI:       c.DNI,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		City:      c.City,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
