package services

import (
	"errors"
	"fmt"
	"log"

	"productos/internal/models"
	"productos/internal/repositories"
	"productos/pkg/rabbitmq"
)

// ErrInsufficientStock is returned when a stock reservation asks for more
// units than the product currently has.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // may be nil, publishing is then skipped
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByCategory retrieves the products in the given category.
func (s *ProductService) GetProductsByCategory(cat models.Category) ([]models.Product, error) {
	return s.repo.GetByCategory(cat)
}

// CreateProduct creates a new product. The repository assigns the id on
// the passed struct.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publishEvent("product.created", product)
	return nil
}

// UpdateProduct fully replaces the product stored under id. It fails with
// repositories.ErrProductNotFound when id does not exist: replace never
// creates a record.
func (s *ProductService) UpdateProduct(id uint, product *models.Product) error {
	product.ID = id
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publishEvent("product.updated", product)
	return nil
}

// UpdateStock overwrites the stock of the product stored under id with
// newStock. The value replaces the stored quantity, it is not a delta.
func (s *ProductService) UpdateStock(id uint, newStock int) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	product.Stock = newStock
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publishEvent("product.stock_updated", product)
	return nil
}

// DecrementStock reserves qty units of the product stored under id,
// reducing its stock. Reservations beyond the available stock are
// rejected with ErrInsufficientStock so stock can never go negative.
func (s *ProductService) DecrementStock(id uint, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("reservation quantity must be positive, got %d", qty)
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product.Stock < qty {
		return fmt.Errorf("%w for product %d (requested: %d, available: %d)",
			ErrInsufficientStock, id, qty, product.Stock)
	}
	product.Stock -= qty
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publishEvent("product.stock_updated", product)
	return nil
}

// DeleteProduct deletes a product by its ID. Deleting an id that does not
// exist is reported as repositories.ErrProductNotFound, not ignored.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("product.deleted", &models.Product{ID: id})
	return nil
}

// publishEvent publishes a product lifecycle event. Publishing is
// best-effort: a missing client or a broker error never fails the
// operation that triggered the event.
func (s *ProductService) publishEvent(eventType string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"productId": product.ID,
		"name":      product.Name,
		"stock":     product.Stock,
		"category":  product.Category,
	}
	if err := s.mqClient.PublishProductEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, product.ID, err)
	}
}
