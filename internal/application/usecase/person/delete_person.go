package person

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeletePersonInput represents the input for person deletion.
type DeletePersonInput struct {
	PersonID uuid.UUID
	UserID   uuid.UUID
}

// DeletePersonUseCase removes a person together with all of their debts.
type DeletePersonUseCase struct {
	personRepo   adapter.PersonRepository
	summaryCache adapter.SummaryCache
}

// NewDeletePersonUseCase creates a new DeletePersonUseCase instance.
func NewDeletePersonUseCase(personRepo adapter.PersonRepository, summaryCache adapter.SummaryCache) *DeletePersonUseCase {
	return &DeletePersonUseCase{
		personRepo:   personRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the person deletion.
func (uc *DeletePersonUseCase) Execute(ctx context.Context, input DeletePersonInput) error {
	if err := uc.personRepo.DeleteWithDebts(ctx, input.PersonID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrPersonNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}

	if uc.summaryCache != nil {
		if err := uc.summaryCache.InvalidateUser(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate summary cache", "user_id", input.UserID, "error", err)
		}
	}

	slog.Info("Person deleted with debts",
		"user_id", input.UserID,
		"person_id", input.PersonID,
	)
	return nil
}
