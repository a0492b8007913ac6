package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/internal/repository"
	"github.com/hearth/sanctuary/pkg/entity"
)

type AliasService struct {
	repo repository.AliasesRepositoryI
}

func NewAliasService(aliasesRepo repository.AliasesRepositoryI) *AliasService {
	if aliasesRepo == nil {
		log.Fatal("provided nil aliasesRepo")
	}
	return &AliasService{
		repo: aliasesRepo,
	}
}

func (as *AliasService) CreateAlias(ctx context.Context, userID uuid.UUID, req *CreateAliasRequest) (*entity.Alias, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	alias, err := as.repo.Create(ctx, userID, req.Alias)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAliasExists) {
			return nil, err
		}
		return nil, fmt.Errorf("creating alias: %w", err)
	}
	return alias, nil
}

func (as *AliasService) GetAlias(ctx context.Context, userID uuid.UUID) (*entity.Alias, error) {
	alias, err := as.repo.FindLatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAliasNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("searching alias: %w", err)
	}
	return alias, nil
}
