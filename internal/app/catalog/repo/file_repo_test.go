package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `products:
  - id: P1
    sku: POL-001
    name: Polera Bronca
    description: Polera de algodón negra
    price: 12990
  - id: P2
    sku: GOR-001
    name: Gorro Clásico
    description: Gorro de lana
    price: 7990
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewFileRepository_LoadsProducts(t *testing.T) {
	repo, err := NewFileRepository(writeCatalog(t, fixture))
	require.NoError(t, err)

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Polera Bronca", all[0].Name)
	assert.Equal(t, int64(12990), all[0].Price)

	product, ok := repo.GetByID("P2")
	require.True(t, ok)
	assert.Equal(t, "GOR-001", product.SKU)

	_, ok = repo.GetByID("missing")
	assert.False(t, ok)
}

func TestNewFileRepository_MissingFile(t *testing.T) {
	_, err := NewFileRepository(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestNewFileRepository_MalformedFile(t *testing.T) {
	_, err := NewFileRepository(writeCatalog(t, "products: [oops"))
	assert.Error(t, err)
}
