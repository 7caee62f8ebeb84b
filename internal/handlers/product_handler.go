package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"productos/internal/dto"
	"productos/internal/httperr"
	"productos/internal/models"
	"productos/internal/services"
)

// ProductHandler handles HTTP requests for products. Failures are
// returned as errors and translated centrally by httperr.Handler.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	validate := validator.New()

	// Report violations under the JSON field names clients actually sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The category rule keeps the enum in one place instead of repeating
	// the value list in a oneof tag.
	_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})

	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/category/:category", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Patch("/:id/stock", h.HandleUpdateStock)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponseList(products))
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// HandleGetProductsByCategory retrieves the products in one category. An
// unknown category value is a 400, never silently coerced.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	category, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	products, err := h.service.GetProductsByCategory(category)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponseList(products))
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validateStruct(&req); err != nil {
		return err
	}

	product := req.ToModel()
	if err := h.service.CreateProduct(product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductResponse(product))
}

// HandleUpdateProduct fully replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validateStruct(&req); err != nil {
		return err
	}

	if err := h.service.UpdateProduct(id, req.ToModel()); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// HandleUpdateStock overwrites the stock of an existing product.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	var req dto.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validateStruct(&req); err != nil {
		return err
	}

	if err := h.service.UpdateStock(id, *req.Stock); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID reads the :id path parameter as a positive integer.
func (h *ProductHandler) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("invalid product id: %s", c.Params("id")))
	}
	return uint(id), nil
}

// validateStruct runs the validator and converts its findings into the
// field-map error shape the translator emits as a 400.
func (h *ProductHandler) validateStruct(req interface{}) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag())
	}
	return &httperr.ValidationError{Fields: errorMessages}
}
