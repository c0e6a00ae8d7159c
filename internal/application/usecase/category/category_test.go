package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

type fakeCategoryRepo struct {
	byID       map[string]*entity.Category
	referenced map[string]bool
}

func newFakeCategoryRepo(ids ...string) *fakeCategoryRepo {
	r := &fakeCategoryRepo{byID: make(map[string]*entity.Category), referenced: make(map[string]bool)}
	for _, id := range ids {
		r.byID[id] = entity.NewCategory(id, id, nil, nil)
	}
	return r
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeCategoryRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeCategoryRepo) IsReferenced(_ context.Context, id string) (bool, error) {
	return r.referenced[id], nil
}

func categoryCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var catErr *domainerror.CategoryError
	require.True(t, errors.As(err, &catErr), "got %v", err)
	return catErr.Code
}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateCategoryInput
		wantCode domainerror.CategoryErrorCode
	}{
		{name: "valid slug", input: CreateCategoryInput{ID: "pets", Name: "Pets"}},
		{name: "duplicate", input: CreateCategoryInput{ID: "food", Name: "Food"}, wantCode: domainerror.ErrCodeCategoryAlreadyExists},
		{name: "uppercase id", input: CreateCategoryInput{ID: "Pets", Name: "Pets"}, wantCode: domainerror.ErrCodeInvalidCategoryID},
		{name: "blank name", input: CreateCategoryInput{ID: "gym", Name: " "}, wantCode: domainerror.ErrCodeMissingCategoryFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCategoryRepo("food")
			out, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), tt.input)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, categoryCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.ID, out.Category.ID)
			assert.Contains(t, repo.byID, tt.input.ID)
		})
	}
}

func TestDeleteCategory_RefusesReferenced(t *testing.T) {
	repo := newFakeCategoryRepo("food", "pets")
	repo.referenced["food"] = true
	del := NewDeleteCategoryUseCase(repo)

	_, err := del.Execute(context.Background(), DeleteCategoryInput{CategoryID: "food"})
	assert.Equal(t, domainerror.ErrCodeCategoryInUse, categoryCode(t, err))
	assert.Contains(t, repo.byID, "food")

	_, err = del.Execute(context.Background(), DeleteCategoryInput{CategoryID: "missing"})
	assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)

	out, err := del.Execute(context.Background(), DeleteCategoryInput{CategoryID: "pets"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NotContains(t, repo.byID, "pets")
}

func TestUpdateCategory(t *testing.T) {
	repo := newFakeCategoryRepo("food")
	update := NewUpdateCategoryUseCase(repo)

	name := "Groceries"
	out, err := update.Execute(context.Background(), UpdateCategoryInput{CategoryID: "food", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", out.Category.Name)

	blank := ""
	_, err = update.Execute(context.Background(), UpdateCategoryInput{CategoryID: "food", Name: &blank})
	assert.Equal(t, domainerror.ErrCodeMissingCategoryFields, categoryCode(t, err))
}
