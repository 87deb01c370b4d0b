// Package blog gives access to the blogs collection.
package blog

import (
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

// Name is the collection name.
const Name = "blogs"

// Collection is the blogs collection.
type Collection = collection.Collection[models.Blog, models.BlogPatch]

// New returns the blogs collection. publisher may be nil.
func New(db *gorm.DB, publisher collection.Publisher[models.Blog]) *Collection {
	if publisher == nil {
		return collection.New[models.Blog, models.BlogPatch](Name, db)
	}

	return collection.New(Name, db, collection.WithPublisher[models.Blog, models.BlogPatch](publisher))
}
