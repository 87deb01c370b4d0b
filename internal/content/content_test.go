package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/db/dbtest"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/mirror"
)

func newContent(t *testing.T) *Content {
	t.Helper()

	c := New(dbtest.Open(t, Models()...))
	t.Cleanup(c.Close)

	return c
}

func TestFallbacks(t *testing.T) {
	c := newContent(t)
	ctx := context.Background()

	assert.Equal(t, "Sample Project", c.Projects.Panel.Records()[0].Title)
	assert.Equal(t, "Sample Hero", c.HeroImages.Panel.Records()[0].Title)

	assert.Len(t, c.Services.Overview(ctx), 1)
	assert.Equal(t, "Sample Service", c.Services.Overview(ctx)[0].Title)
	assert.Equal(t, "Mining Consultation", c.Services.Public(ctx)[0].Title)

	c.Refresh(ctx)
	assert.Equal(t, mirror.PhaseFallback, c.Blogs.Panel.Phase())
}

func TestStoredRecordsReplaceFallbacks(t *testing.T) {
	c := newContent(t)
	ctx := context.Background()

	created, err := c.Blogs.Store.Create(ctx, models.Blog{
		Title: "B1", Content: "c", Author: "a", Date: time.Now().UnixMilli(),
	})
	require.NoError(t, err)

	public := c.Blogs.Public(ctx)
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)
	assert.Len(t, c.Blogs.Overview(ctx), 1)
	assert.Equal(t, "B1", c.Blogs.Overview(ctx)[0].Title)

	c.Refresh(ctx)
	assert.Equal(t, mirror.PhaseLoaded, c.Blogs.Panel.Phase())
	assert.Equal(t, mirror.PhaseFallback, c.Projects.Panel.Phase())
}

func TestRunFollowsStoreChanges(t *testing.T) {
	c := newContent(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return c.HeroImages.Hub.Subscribers() == 1 && c.Projects.Hub.Subscribers() == 1
	}, time.Second, 5*time.Millisecond)

	created, err := c.HeroImages.Store.Create(context.Background(), models.HeroImage{Title: "Welcome"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, ok := c.HeroImages.Panel.Find(created.ID)
		return ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestCloseEndsRun(t *testing.T) {
	c := New(dbtest.Open(t, Models()...))
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Run(context.Background())
	}()

	require.Eventually(t, func() bool { return c.Blogs.Hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	c.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
}
