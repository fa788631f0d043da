package domain

import "strings"

// CategoryAll is the category selector meaning no category restriction
const CategoryAll = "all"

// FilterProducts retains the products matching both the category selector
// and the search query. A selector of "all" disables the category filter;
// an empty query disables the search filter. Matching is case-sensitive
// and exact for categories, case-insensitive substring over name,
// description and category for the query. Input order is preserved.
func FilterProducts(products []Product, categorySelector, searchQuery string) []Product {
	filtered := make([]Product, 0, len(products))
	query := strings.ToLower(searchQuery)

	for _, p := range products {
		if categorySelector != CategoryAll && p.Category != categorySelector {
			continue
		}
		if query != "" && !matchesQuery(&p, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func matchesQuery(p *Product, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Description), loweredQuery) ||
		strings.Contains(strings.ToLower(p.Category), loweredQuery)
}

// BrowseMode is the resolved browse selection: either a category or a free
// search, never both. The zero value browses all products.
type BrowseMode struct {
	Category string
	Query    string
}

// ByCategory selects a category browse
func ByCategory(id string) BrowseMode {
	if id == "" {
		id = CategoryAll
	}
	return BrowseMode{Category: id}
}

// BySearch selects a free-text search browse
func BySearch(query string) BrowseMode {
	return BrowseMode{Category: CategoryAll, Query: query}
}

// BrowseState owns the mutually exclusive category/search selection on
// behalf of the presentation layer: the last action taken wins and resets
// the other.
type BrowseState struct {
	mode BrowseMode
}

// NewBrowseState starts at the "all products" browse
func NewBrowseState() *BrowseState {
	return &BrowseState{mode: ByCategory(CategoryAll)}
}

// SelectCategory switches to category browsing and clears any active search
func (s *BrowseState) SelectCategory(id string) {
	s.mode = ByCategory(id)
}

// Search switches to free-text search; a non-empty query resets the
// category selection to "all", an empty query only clears the search.
func (s *BrowseState) Search(query string) {
	if query == "" {
		s.mode = ByCategory(s.mode.Category)
		return
	}
	s.mode = BySearch(query)
}

// Mode returns the currently resolved browse mode
func (s *BrowseState) Mode() BrowseMode {
	return s.mode
}

// Apply filters the product list under the resolved mode
func (m BrowseMode) Apply(products []Product) []Product {
	return FilterProducts(products, m.Category, m.Query)
}
