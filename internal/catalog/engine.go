package catalog

import (
	"sort"
	"strings"
	"time"

	"go-coffee-store/internal/model"
)

// Summary is the listing projection of a product: identity, bilingual
// naming, and the resolved pricing snapshot.
type Summary struct {
	ID           uint      `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	NameAr       *string   `json:"name_ar,omitempty"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CategorySlug string    `json:"category_slug,omitempty"`
	IsFeatured   bool      `json:"is_featured"`
	IsDigital    bool      `json:"is_digital"`
	DisplayOrder int       `json:"display_order"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Pricing
}

// Page is the paginated result envelope returned to callers.
type Page struct {
	Items       []Summary `json:"items"`
	CurrentPage int       `json:"currentPage"`
	PageSize    int       `json:"pageSize"`
	TotalItems  int       `json:"totalItems"`
	TotalPages  int       `json:"totalPages"`
}

// TotalPages is ceil(totalItems / pageSize) for pageSize > 0.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

type predicate func(*model.Product) bool

// Search applies the search spec's filters, sort, and pagination to the
// candidate products and returns a page of summaries. Read-only: the input
// slice is never mutated.
func Search(products []model.Product, spec SearchSpec) Page {
	n := spec.resolve()

	preds := buildPredicates(n)
	filtered := make([]*model.Product, 0, len(products))
outer:
	for i := range products {
		for _, keep := range preds {
			if !keep(&products[i]) {
				continue outer
			}
		}
		filtered = append(filtered, &products[i])
	}

	sortProducts(filtered, n.Sort, n.Dir)

	total := len(filtered)
	skip := (n.Page - 1) * n.PageSize
	take := n.PageSize
	if skip > total {
		skip = total
	}
	if skip+take > total {
		take = total - skip
	}

	items := make([]Summary, 0, take)
	for _, p := range filtered[skip : skip+take] {
		items = append(items, newSummary(p))
	}

	return Page{
		Items:       items,
		CurrentPage: n.Page,
		PageSize:    n.PageSize,
		TotalItems:  total,
		TotalPages:  TotalPages(total, n.PageSize),
	}
}

// buildPredicates composes the AND-combined filter closures for a query.
// Public listings never surface inactive products, so that filter is
// unconditional.
func buildPredicates(n normalized) []predicate {
	preds := []predicate{
		func(p *model.Product) bool { return p.IsActive },
	}

	if q := strings.TrimSpace(n.Query); q != "" {
		needle := strings.ToLower(q)
		preds = append(preds, func(p *model.Product) bool {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				return true
			}
			if p.NameAr != nil && strings.Contains(strings.ToLower(*p.NameAr), needle) {
				return true
			}
			return strings.Contains(strings.ToLower(p.SKU), needle)
		})
	}

	// Category id wins over slug when both are present.
	if n.CategoryID != nil {
		id := *n.CategoryID
		preds = append(preds, func(p *model.Product) bool { return p.CategoryID == id })
	} else if n.CategorySlug != "" {
		s := n.CategorySlug
		preds = append(preds, func(p *model.Product) bool {
			return p.Category != nil && p.Category.Slug == s
		})
	}

	if n.FeaturedOnly {
		preds = append(preds, func(p *model.Product) bool { return p.IsFeatured })
	}

	// In stock means at least one ACTIVE variant carries stock. The product
	// delete guard intentionally counts inactive variants too; the two rules
	// must not be unified.
	if n.InStockOnly {
		preds = append(preds, func(p *model.Product) bool {
			for i := range p.Variants {
				if p.Variants[i].IsActive && p.Variants[i].StockQuantity > 0 {
					return true
				}
			}
			return false
		})
	}

	// Price bounds compare against the resolved effective price; a product
	// with no resolvable price is excluded from any bounded query.
	if n.MinPrice != nil || n.MaxPrice != nil {
		min, max := n.MinPrice, n.MaxPrice
		preds = append(preds, func(p *model.Product) bool {
			price := Resolve(p).Price
			if price == nil {
				return false
			}
			if min != nil && price.LessThan(*min) {
				return false
			}
			if max != nil && price.GreaterThan(*max) {
				return false
			}
			return true
		})
	}

	return preds
}

// sortProducts orders by the primary key with the requested direction, then
// by name. The name tiebreak deliberately stays ascending even for desc
// queries; only the primary key is reversed.
func sortProducts(products []*model.Product, key SortKey, dir Direction) {
	sort.SliceStable(products, func(i, j int) bool {
		c := compareByKey(products[i], products[j], key)
		if dir == Desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return strings.Compare(products[i].Name, products[j].Name) < 0
	})
}

func compareByKey(a, b *model.Product, key SortKey) int {
	switch key {
	case SortName:
		return strings.Compare(a.Name, b.Name)
	case SortCreated:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortUpdated:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default: // SortDisplayOrder and SortDefault
		switch {
		case a.DisplayOrder < b.DisplayOrder:
			return -1
		case a.DisplayOrder > b.DisplayOrder:
			return 1
		default:
			return 0
		}
	}
}

func newSummary(p *model.Product) Summary {
	s := Summary{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		NameAr:       p.NameAr,
		CategoryID:   p.CategoryID,
		IsFeatured:   p.IsFeatured,
		IsDigital:    p.IsDigital,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Pricing:      Resolve(p),
	}
	if p.Category != nil {
		s.CategoryName = p.Category.Name
		s.CategorySlug = p.Category.Slug
	}
	if img := p.MainImage(); img != nil {
		s.ImageURL = &img.ImagePath
	}
	return s
}
