// Package heroimage gives access to the hero images collection.
package heroimage

import (
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

// Name is the collection name.
const Name = "heroImages"

// Collection is the hero images collection.
type Collection = collection.Collection[models.HeroImage, models.HeroImagePatch]

// New returns the hero images collection. publisher may be nil.
func New(db *gorm.DB, publisher collection.Publisher[models.HeroImage]) *Collection {
	if publisher == nil {
		return collection.New[models.HeroImage, models.HeroImagePatch](Name, db)
	}

	return collection.New(Name, db, collection.WithPublisher[models.HeroImage, models.HeroImagePatch](publisher))
}
