package models

import "fmt"

// Category is the closed set of product classification tags.
type Category string

const (
	CategoryElectronica Category = "ELECTRONICA"
	CategoryHogar       Category = "HOGAR"
	CategoryRopa        Category = "ROPA"
	CategoryDeportes    Category = "DEPORTES"
	CategoryJuguetes    Category = "JUGUETES"
	CategoryAlimentos   Category = "ALIMENTOS"
)

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{
		CategoryElectronica,
		CategoryHogar,
		CategoryRopa,
		CategoryDeportes,
		CategoryJuguetes,
		CategoryAlimentos,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronica, CategoryHogar, CategoryRopa,
		CategoryDeportes, CategoryJuguetes, CategoryAlimentos:
		return true
	}
	return false
}

// ParseCategory converts a raw string (e.g. a path parameter) into a
// Category, rejecting anything outside the enumeration.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %s", s)
	}
	return c, nil
}

// Product represents a product in the catalog. The ID is assigned by
// storage on creation and never changes afterwards.
type Product struct {
	ID          uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string   `json:"name" gorm:"type:varchar(100);not null"`
	Description string   `json:"description" gorm:"type:varchar(500)"`
	Price       float64  `json:"price" gorm:"not null"`
	Stock       int      `json:"stock" gorm:"not null"`
	Category    Category `json:"category" gorm:"type:varchar(32);not null;index"`
}
