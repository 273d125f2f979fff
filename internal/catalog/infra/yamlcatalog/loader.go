package yamlcatalog

import (
	"fmt"
	"os"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Products   []yamlProduct  `yaml:"products"`
	Categories []yamlCategory `yaml:"categories"`
}

type yamlProduct struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"original_price"`
	Category      string   `yaml:"category"`
	Description   string   `yaml:"description"`
	Image         string   `yaml:"image"`
	Images        []string `yaml:"images"`
	Features      []string `yaml:"features"`
	InStock       bool     `yaml:"in_stock"`
	Rating        float64  `yaml:"rating"`
	ReviewCount   int      `yaml:"review_count"`
	IsNew         bool     `yaml:"is_new"`
	IsFeatured    bool     `yaml:"is_featured"`
}

type yamlCategory struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Load reads a catalog definition from a YAML file. Prices are decimal
// strings so no float conversion happens on the way in.
func Load(path string) ([]domain.Product, []domain.Category, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("yamlcatalog: read %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) ([]domain.Product, []domain.Category, error) {
	var f yamlFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, nil, fmt.Errorf("yamlcatalog: parse: %w", err)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for _, yp := range f.Products {
		p, err := mapProduct(yp)
		if err != nil {
			return nil, nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, nil, fmt.Errorf("yamlcatalog: %w", err)
		}
		products = append(products, p)
	}

	categories := make([]domain.Category, 0, len(f.Categories))
	for _, yc := range f.Categories {
		if yc.ID == "" || yc.Name == "" {
			return nil, nil, fmt.Errorf("yamlcatalog: category needs id and name, got id=%q name=%q", yc.ID, yc.Name)
		}
		categories = append(categories, domain.Category{ID: yc.ID, Name: yc.Name, Count: yc.Count})
	}

	return products, categories, nil
}

func mapProduct(yp yamlProduct) (domain.Product, error) {
	price, err := decimal.NewFromString(yp.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("yamlcatalog: product %s: bad price %q: %w", yp.ID, yp.Price, err)
	}

	var original *decimal.Decimal
	if yp.OriginalPrice != "" {
		op, err := decimal.NewFromString(yp.OriginalPrice)
		if err != nil {
			return domain.Product{}, fmt.Errorf("yamlcatalog: product %s: bad original_price %q: %w", yp.ID, yp.OriginalPrice, err)
		}
		original = &op
	}

	return domain.Product{
		ID:            yp.ID,
		Name:          yp.Name,
		Price:         price,
		OriginalPrice: original,
		Category:      yp.Category,
		Description:   yp.Description,
		Image:         yp.Image,
		Images:        yp.Images,
		Features:      yp.Features,
		InStock:       yp.InStock,
		Rating:        yp.Rating,
		ReviewCount:   yp.ReviewCount,
		IsNew:         yp.IsNew,
		IsFeatured:    yp.IsFeatured,
	}, nil
}
