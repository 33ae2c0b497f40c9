package address

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/internal/testutil"
)

func TestRepository(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	repo := NewRepository(db)

	first, err := repo.GetOrCreate(ctx, core.Address{
		Country:  "NL",
		City:     "Amsterdam",
		Street:   "Spuistraat",
		Building: "12",
	})
	if assert.NoError(t, err) {
		assert.NotZero(t, first.ID)
	}

	// same four fields resolve to the same row
	second, err := repo.GetOrCreate(ctx, core.Address{
		Country:  "NL",
		City:     "Amsterdam",
		Street:   "Spuistraat",
		Building: "12",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, first.ID, second.ID)
	}

	other, err := repo.GetOrCreate(ctx, core.Address{
		Country:  "NL",
		City:     "Amsterdam",
		Street:   "Spuistraat",
		Building: "14",
	})
	if assert.NoError(t, err) {
		assert.NotEqual(t, first.ID, other.ID)
	}

	found, err := repo.Get(ctx, first.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Amsterdam", found.City)
	}

	_, err = repo.Get(ctx, 99999)
	assert.IsType(t, core.ErrorNotFound{}, err)
}
