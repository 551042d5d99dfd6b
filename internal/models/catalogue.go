package models

type CatalogueKind string

const (
	KindProduct    CatalogueKind = "PRODUCT"
	KindIngredient CatalogueKind = "INGREDIENT"
	KindPackaging  CatalogueKind = "PACKAGING"
)

// CatalogueItem: reusable name for finished products and their inputs
type CatalogueItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name" validate:"required"`
	Kind     CatalogueKind `json:"kind" validate:"required,oneof=PRODUCT INGREDIENT PACKAGING"`
	Brand    string        `json:"brand"`
	Supplier string        `json:"supplier"`
}
