package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[V any](v V) *V {
	return &v
}

func TestProjectPatch_Apply(t *testing.T) {
	project := Project{
		ID:           "p1",
		Title:        "Old",
		Description:  "desc",
		Link:         "https://x",
		Technologies: []string{"Go"},
	}

	tags := []string{"React", "Tailwind"}
	ProjectPatch{Title: ptr("New"), Technologies: &tags}.Apply(&project)

	assert.Equal(t, "New", project.Title)
	assert.Equal(t, "desc", project.Description)
	assert.Equal(t, "https://x", project.Link)
	assert.Equal(t, []string{"React", "Tailwind"}, project.Technologies)

	// the patch must not alias the caller's slice
	tags[0] = "Vue"
	assert.Equal(t, "React", project.Technologies[0])
}

func TestBlogPatch_Apply(t *testing.T) {
	blog := Blog{ID: "b1", Title: "Old", Content: "body", Author: "Admin", Date: 42}

	BlogPatch{Title: ptr("New")}.Apply(&blog)

	assert.Equal(t, Blog{ID: "b1", Title: "New", Content: "body", Author: "Admin", Date: 42}, blog)
}

func TestEmptyPatchesLeaveRecordsUntouched(t *testing.T) {
	service := Service{ID: "s1", Title: "Web", Description: "Sites", Icon: "fa-globe"}
	ServicePatch{}.Apply(&service)
	assert.Equal(t, Service{ID: "s1", Title: "Web", Description: "Sites", Icon: "fa-globe"}, service)

	hero := HeroImage{ID: "h1", Title: "Hi"}
	HeroImagePatch{Subtitle: ptr("")}.Apply(&hero)
	assert.Equal(t, HeroImage{ID: "h1", Title: "Hi", Subtitle: ""}, hero)
}

func TestWithKey(t *testing.T) {
	project := Project{ID: "old", Technologies: []string{"Go"}}
	copied := project.WithKey("new")

	assert.Equal(t, "new", copied.Key())
	assert.Equal(t, "old", project.Key())

	copied.Technologies[0] = "Rust"
	assert.Equal(t, "Go", project.Technologies[0])

	assert.Equal(t, "b", Blog{}.WithKey("b").Key())
	assert.Equal(t, "s", Service{}.WithKey("s").Key())
	assert.Equal(t, "h", HeroImage{}.WithKey("h").Key())
}

func TestOptionalImagesAlwaysSerialized(t *testing.T) {
	testCases := []struct {
		name   string
		record any
		key    string
	}{
		{"project", Project{}, "image"},
		{"blog", Blog{}, "image"},
		{"service", Service{}, "icon"},
		{"hero image", HeroImage{}, "image"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.record)
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(data, &fields))

			assert.Contains(t, fields, tc.key)
			assert.Empty(t, fields[tc.key])
		})
	}
}
