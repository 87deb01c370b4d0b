package emailsettings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/setting"
	"github.com/portfolio-admin/portfolio-admin/internal/db/dbtest"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

func TestSaveLoad(t *testing.T) {
	db := dbtest.Open(t, &models.Setting{})
	ctx := context.Background()

	missing := &Settings{}
	require.ErrorIs(t, missing.Load(ctx, db), setting.ErrSettingNotFound)

	saved := &Settings{ServiceID: "service_x", TemplateID: "template_y", PublicKey: "public-key-z"}
	require.NoError(t, saved.Save(ctx, db))

	loaded := &Settings{}
	require.NoError(t, loaded.Load(ctx, db))
	assert.Equal(t, saved, loaded)
	assert.True(t, loaded.Complete())
}

func TestComplete(t *testing.T) {
	assert.False(t, (&Settings{ServiceID: "a", TemplateID: "b"}).Complete())
	assert.False(t, (&Settings{}).Complete())
}
