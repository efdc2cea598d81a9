// Package repo loads the product catalog from a YAML file.
package repo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ventasbronca/storefront/internal/app/catalog/domain"
)

// productRecord is the YAML form of one catalog entry.
type productRecord struct {
	ID          string `yaml:"id"`
	SKU         string `yaml:"sku"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       int64  `yaml:"price"`
}

type catalogFile struct {
	Products []productRecord `yaml:"products"`
}

// FileRepository reads products from a catalog file once and serves them from
// memory.
type FileRepository struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// NewFileRepository loads the catalog at path.
func NewFileRepository(path string) (*FileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	repo := &FileRepository{byID: make(map[string]domain.Product, len(file.Products))}
	for _, rec := range file.Products {
		product := domain.Product{
			ID:          rec.ID,
			SKU:         rec.SKU,
			Name:        rec.Name,
			Description: rec.Description,
			Price:       rec.Price,
		}
		repo.products = append(repo.products, product)
		repo.byID[product.ID] = product
	}
	return repo, nil
}

// All returns every product in catalog order.
func (r *FileRepository) All() []domain.Product {
	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products
}

// GetByID returns the product with the given id.
func (r *FileRepository) GetByID(id string) (domain.Product, bool) {
	product, ok := r.byID[id]
	return product, ok
}
