package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hearth/sanctuary/internal/adherence"
	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/internal/repository"
	"github.com/hearth/sanctuary/pkg/entity"
)

type AdherenceService struct {
	repo repository.DoseEventsRepositoryI
	now  func() time.Time
}

func NewAdherenceService(doseRepo repository.DoseEventsRepositoryI) *AdherenceService {
	if doseRepo == nil {
		log.Fatal("provided nil doseRepo")
	}
	return &AdherenceService{
		repo: doseRepo,
		now:  time.Now,
	}
}

// WithClock replaces the wall clock used for defaults and future checks.
func (as *AdherenceService) WithClock(now func() time.Time) *AdherenceService {
	as.now = now
	return as
}

// RecordDose does not reject a second dose on the same day; callers that need
// the guard check TakenToday first.
func (as *AdherenceService) RecordDose(ctx context.Context, userID uuid.UUID, takenAt *time.Time) (*entity.DoseEvent, error) {
	now := as.now()
	at := now
	if takenAt != nil {
		if takenAt.IsZero() {
			return nil, errors.Join(errorvalues.ErrInvalidInput, errors.New("taken_at is zero"))
		}
		if takenAt.After(now) {
			return nil, errors.Join(errorvalues.ErrInvalidInput, errors.New("taken_at is in the future"))
		}
		at = *takenAt
	}
	event, err := as.repo.Append(ctx, userID, at)
	if err != nil {
		return nil, fmt.Errorf("recording dose: %w", err)
	}
	return event, nil
}

func (as *AdherenceService) TakenToday(ctx context.Context, userID uuid.UUID, asOf time.Time) (bool, error) {
	if asOf.IsZero() {
		return false, errors.Join(errorvalues.ErrInvalidInput, errors.New("reference instant is zero"))
	}
	y, m, d := asOf.Date()
	since := time.Date(y, m, d, 0, 0, 0, 0, asOf.Location())
	events, err := as.repo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return false, fmt.Errorf("checking today's dose: %w", err)
	}
	return adherence.TakenOn(events, asOf), nil
}

// GetSnapshot loads the full history since the streak is unbounded.
func (as *AdherenceService) GetSnapshot(ctx context.Context, userID uuid.UUID, asOf time.Time) (*entity.AdherenceSnapshot, error) {
	if asOf.IsZero() {
		asOf = as.now()
	}
	events, err := as.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading dose history: %w", err)
	}
	return adherence.Snapshot(events, asOf)
}

func (as *AdherenceService) ListDoses(ctx context.Context, userID uuid.UUID) ([]entity.DoseEvent, error) {
	events, err := as.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading dose history: %w", err)
	}
	return events, nil
}
