package tui

import (
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

type productsLoadedMsg struct {
	products []*catalogdomain.Product
}

type categoriesLoadedMsg struct {
	categories []catalogdomain.Category
}

type cartUpdatedMsg struct {
	snap cartdomain.Snapshot
}

type checkoutStartedMsg struct {
	attempt checkoutapp.Attempt
	summary checkoutapp.Summary
}

type summaryLoadedMsg struct {
	summary checkoutapp.Summary
}

type orderCompletedMsg checkoutapp.CompletedOrder

type ordersLoadedMsg struct {
	orders []orderdomain.Order
}

type errMsg struct {
	err error
}
