// Package fallback provides the sample records shown while a collection is
// empty or unreachable.
package fallback

import (
	_ "embed"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

//go:embed samples.yaml
var samples []byte

// Set holds sample records for every collection.
type Set struct {
	Projects   []models.Project   `yaml:"projects"`
	Blogs      []models.Blog      `yaml:"blogs"`
	Services   []models.Service   `yaml:"services"`
	HeroImages []models.HeroImage `yaml:"heroImages"`
}

type file struct {
	Admin     Set `yaml:"admin"`
	Dashboard Set `yaml:"dashboard"`
	Site      Set `yaml:"site"`
}

var load = sync.OnceValues(func() (file, error) {
	return parse(samples, time.Now())
})

// parse decodes a samples document. Blogs without a date are dated now.
func parse(data []byte, now time.Time) (file, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return file{}, errors.Wrap(err, "failed to decode fallback samples")
	}

	for _, set := range []*Set{&f.Admin, &f.Dashboard, &f.Site} {
		for i := range set.Blogs {
			if set.Blogs[i].Date == 0 {
				set.Blogs[i].Date = now.UnixMilli()
			}
		}
	}

	return f, nil
}

func mustLoad() file {
	f, err := load()
	if err != nil {
		// samples.yaml is compiled in, a decode error is a build defect
		panic(err)
	}

	return f
}

// Admin returns the placeholders of the admin panels.
func Admin() Set {
	return mustLoad().Admin.clone()
}

// Dashboard returns the placeholders of the dashboard counters.
func Dashboard() Set {
	return mustLoad().Dashboard.clone()
}

// Site returns the sample content of the public pages.
func Site() Set {
	return mustLoad().Site.clone()
}

func (s Set) clone() Set {
	projects := slices.Clone(s.Projects)
	for i := range projects {
		projects[i].Technologies = slices.Clone(projects[i].Technologies)
	}

	return Set{
		Projects:   projects,
		Blogs:      slices.Clone(s.Blogs),
		Services:   slices.Clone(s.Services),
		HeroImages: slices.Clone(s.HeroImages),
	}
}
