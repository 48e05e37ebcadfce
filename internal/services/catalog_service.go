package services

import (
	"database/sql"
	"errors"
	"strings"

	"closetluna/internal/domain"
)

// FilterAll is the sentinel that matches any category or size.
const FilterAll = "all"

// ItemStore is the read side of the catalog.
type ItemStore interface {
	List() ([]domain.ClothingItem, error)
	Get(id string) (domain.ClothingItem, error)
}

type CatalogService struct {
	Items ItemStore
}

func NewCatalogService(items ItemStore) *CatalogService {
	return &CatalogService{Items: items}
}

func (s *CatalogService) ListItems() ([]domain.ClothingItem, error) {
	return s.Items.List()
}

func (s *CatalogService) GetItem(id string) (domain.ClothingItem, error) {
	it, err := s.Items.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ClothingItem{}, domain.ErrItemNotFound
	}
	return it, err
}

// Filter narrows items by a case-insensitive substring match on name and
// description (empty term matches everything) and exact category/size
// matches, where "all" or empty matches any value. Pure; input order is
// preserved.
func Filter(items []domain.ClothingItem, term, category, size string) []domain.ClothingItem {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.ClothingItem, 0, len(items))
	for _, it := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Description), term) {
			continue
		}
		if category != "" && category != FilterAll && it.Category != category {
			continue
		}
		if size != "" && size != FilterAll && it.Size != size {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FilterOptions returns the distinct categories and sizes across the full
// catalog, in first-seen order, each prefixed with the "all" sentinel for
// the filter controls.
func FilterOptions(items []domain.ClothingItem) (categories, sizes []string) {
	categories = []string{FilterAll}
	sizes = []string{FilterAll}
	seenCat := map[string]bool{}
	seenSize := map[string]bool{}
	for _, it := range items {
		if !seenCat[it.Category] {
			seenCat[it.Category] = true
			categories = append(categories, it.Category)
		}
		if !seenSize[it.Size] {
			seenSize[it.Size] = true
			sizes = append(sizes, it.Size)
		}
	}
	return categories, sizes
}
