package services

import (
	"github.com/hjnengare/sayso-server/internal/taxonomy"
)

// CategoryService serves the canonical taxonomy. The set is versioned in
// code, not in the database, so listing it is pure.
type CategoryService struct{}

func NewCategoryService() *CategoryService {
	return &CategoryService{}
}

// List returns the canonical subcategories in display order
func (s *CategoryService) List() []taxonomy.Subcategory {
	return taxonomy.Subcategories()
}

// Interests returns the top-level interest set in display order
func (s *CategoryService) Interests() []taxonomy.Interest {
	return taxonomy.Interests()
}
