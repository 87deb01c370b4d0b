// Package project gives access to the projects collection.
package project

import (
	"strings"

	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

// Name is the collection name.
const Name = "projects"

// Collection is the projects collection.
type Collection = collection.Collection[models.Project, models.ProjectPatch]

// New returns the projects collection. publisher may be nil.
// Technologies are stored exactly as given.
func New(db *gorm.DB, publisher collection.Publisher[models.Project]) *Collection {
	if publisher == nil {
		return collection.New[models.Project, models.ProjectPatch](Name, db)
	}

	return collection.New(Name, db, collection.WithPublisher[models.Project, models.ProjectPatch](publisher))
}

// SplitTechnologies parses a comma separated tag list as typed in the admin
// form. Tags are trimmed, empty ones dropped, the order is kept.
func SplitTechnologies(s string) []string {
	tags := make([]string, 0)

	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
