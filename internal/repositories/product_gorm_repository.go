package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"productos/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// GetByCategory retrieves all products in the given category.
func (r *GORMProductRepository) GetByCategory(cat models.Category) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("category = ?", cat).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products in category %s: %w", cat, err)
	}
	return products, nil
}

// Create creates a new product in the database. GORM fills in the
// auto-increment id on the passed struct.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update fully replaces an existing product. Save would happily insert a
// fresh row for an unknown id, so existence is checked first to keep
// replace from acting as an upsert.
func (r *GORMProductRepository) Update(product *models.Product) error {
	var existing models.Product
	if err := r.db.First(&existing, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to look up product %d for update: %w", product.ID, err)
	}
	// Save updates all fields, including zero values.
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
