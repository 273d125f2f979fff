// Package seed carries the built-in demo catalog, used when no catalog
// file is configured.
package seed

import (
	_ "embed"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/yamlcatalog"
)

//go:embed catalog.yaml
var catalogYAML []byte

func Catalog() ([]domain.Product, []domain.Category, error) {
	return yamlcatalog.Parse(catalogYAML)
}
