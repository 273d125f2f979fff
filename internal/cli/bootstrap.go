package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/storefront/internal/auth"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	catalogmem "github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/seed"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/yamlcatalog"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	ordermem "github.com/dwikikusuma/storefront/internal/order/infra/memory"
)

// core holds the wired services shared by the browse and serve modes.
type core struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	auth     *auth.Provider
}

func buildCore(catalogPath string, paymentDelay time.Duration, log *slog.Logger) (*core, error) {
	products, categories, err := loadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	store, err := catalogmem.NewStore(products, categories)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	catalogSvc := catalogapp.NewService(store)

	cartRepo := cartmem.NewCartRepo()
	cartSvc := cartapp.NewService(cartRepo)

	orderRepo := ordermem.NewOrderRepo()
	orderSvc := orderapp.NewService(orderRepo)

	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	orderPlacer := checkoutadapter.NewOrderServicePlacer(orderSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, orderPlacer, paymentDelay, log)

	return &core{
		catalog:  catalogSvc,
		cart:     cartSvc,
		checkout: checkoutSvc,
		orders:   orderSvc,
		auth:     auth.NewProvider(),
	}, nil
}

func loadCatalog(path string) ([]catalogdomain.Product, []catalogdomain.Category, error) {
	if path == "" {
		return seed.Catalog()
	}
	return yamlcatalog.Load(path)
}
