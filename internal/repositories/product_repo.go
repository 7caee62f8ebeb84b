package repositories

import (
	"errors"

	"productos/internal/models"
)

// ErrProductNotFound is returned by id-scoped operations when no product
// exists for the given id.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every stored product.
	GetAll() ([]models.Product, error)
	// GetByID returns the product with the given id, or ErrProductNotFound.
	GetByID(id uint) (*models.Product, error)
	// GetByCategory returns the products whose category equals cat.
	// The result may be empty.
	GetByCategory(cat models.Category) ([]models.Product, error)
	// Create stores a new product and assigns its id.
	Create(product *models.Product) error
	// Update fully replaces the stored product with the same id, or
	// returns ErrProductNotFound if none exists.
	Update(product *models.Product) error
	// Delete removes the product with the given id, or returns
	// ErrProductNotFound if none exists.
	Delete(id uint) error
}
