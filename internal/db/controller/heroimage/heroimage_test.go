package heroimage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/db/dbtest"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

func TestDeleteOneOfTwo(t *testing.T) {
	heroImages := New(dbtest.Open(t, &models.HeroImage{}), nil)
	ctx := context.Background()

	first, err := heroImages.Create(ctx, models.HeroImage{Title: "First"})
	require.NoError(t, err)

	second, err := heroImages.Create(ctx, models.HeroImage{Title: "Second", Subtitle: "kept"})
	require.NoError(t, err)

	_, err = heroImages.Delete(ctx, first.ID)
	require.NoError(t, err)

	records, err := heroImages.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, "Second", records[0].Title)
	assert.Equal(t, "kept", records[0].Subtitle)
}

func TestAllFieldsOptional(t *testing.T) {
	heroImages := New(dbtest.Open(t, &models.HeroImage{}), nil)
	ctx := context.Background()

	created, err := heroImages.Create(ctx, models.HeroImage{})
	require.NoError(t, err)

	got, err := heroImages.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Title)
	assert.Empty(t, got.Subtitle)
	assert.Empty(t, got.Image)
}

func TestPartialUpdate(t *testing.T) {
	heroImages := New(dbtest.Open(t, &models.HeroImage{}), nil)
	ctx := context.Background()

	created, err := heroImages.Create(ctx, models.HeroImage{Title: "Hi", Subtitle: "there", Image: "https://img"})
	require.NoError(t, err)

	subtitle := "everyone"
	updated, err := heroImages.Update(ctx, created.ID, models.HeroImagePatch{Subtitle: &subtitle})
	require.NoError(t, err)

	assert.Equal(t, "Hi", updated.Title)
	assert.Equal(t, "everyone", updated.Subtitle)
	assert.Equal(t, "https://img", updated.Image)
}
