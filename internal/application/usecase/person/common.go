// Package person contains use cases for the people a user tracks debts with.
package person

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func notFoundError() error {
	return domainerror.NewPersonError(
		domainerror.ErrCodePersonNotFound,
		"person not found",
		domainerror.ErrPersonNotFound,
	)
}

func findOwned(ctx context.Context, repo adapter.PersonRepository, id, userID uuid.UUID) (*entity.Person, error) {
	person, err := repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPersonNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return person, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewPersonError(
			domainerror.ErrCodePersonNameRequired,
			"name is required",
			domainerror.ErrPersonNameRequired,
		)
	}
	return name, nil
}

func checkRelationship(ctx context.Context, repo adapter.RelationshipRepository, id string) error {
	exists, err := repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check relationship: %w", err)
	}
	if !exists {
		return domainerror.NewPersonError(
			domainerror.ErrCodePersonRelationshipNotFound,
			"relationship not found",
			domainerror.ErrPersonRelationshipNotFound,
		)
	}
	return nil
}
