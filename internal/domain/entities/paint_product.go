package entities

import "fmt"

// ProductCategory tells which surface a paint product is sold for.
type ProductCategory string

const (
	ProductCategoryWall   ProductCategory = "wall"
	ProductCategoryTrim   ProductCategory = "trim"
	ProductCategoryPrimer ProductCategory = "primer"
)

// PrimerProductID is the catalog entry used when a primer layer is requested.
const PrimerProductID = "trim_primer"

func ValidProductCategories() []ProductCategory {
	return []ProductCategory{ProductCategoryWall, ProductCategoryTrim, ProductCategoryPrimer}
}

func IsValidProductCategory(s string) bool {
	switch ProductCategory(s) {
	case ProductCategoryWall, ProductCategoryTrim, ProductCategoryPrimer:
		return true
	}
	return false
}

// PaintProduct is an immutable catalog entry.
//
// Prices are per litre in GBP; coverage is square metres per litre for one coat.
type PaintProduct struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Brand            string          `json:"brand"`
	Category         ProductCategory `json:"category"`
	PricePerLitre    float64         `json:"price_per_litre"`
	CoveragePerLitre float64         `json:"coverage_per_litre"`
	Description      string          `json:"description"`
}

// MinCoveragePerLitre is the lowest coverage (m²/L) a catalog product may declare.
const MinCoveragePerLitre = 1.0

// Validate checks the catalog invariants of a single product.
func (p PaintProduct) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("product id is empty")
	case !IsValidProductCategory(string(p.Category)):
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	case p.PricePerLitre < 0:
		return fmt.Errorf("product %s: negative price per litre", p.ID)
	case !(p.CoveragePerLitre >= MinCoveragePerLitre):
		return fmt.Errorf("product %s: coverage per litre must be at least %g", p.ID, MinCoveragePerLitre)
	}
	return nil
}

// SearchQuery is the text used to look up market prices for the product.
func (p PaintProduct) SearchQuery() string {
	return fmt.Sprintf("%s %s paint", p.Brand, p.Name)
}
