// Package service gives access to the services collection.
package service

import (
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

// Name is the collection name.
const Name = "services"

// Collection is the services collection.
type Collection = collection.Collection[models.Service, models.ServicePatch]

// New returns the services collection. publisher may be nil.
func New(db *gorm.DB, publisher collection.Publisher[models.Service]) *Collection {
	if publisher == nil {
		return collection.New[models.Service, models.ServicePatch](Name, db)
	}

	return collection.New(Name, db, collection.WithPublisher[models.Service, models.ServicePatch](publisher))
}
