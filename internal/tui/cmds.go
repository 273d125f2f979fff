package tui

import (
	"context"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	tea "github.com/charmbracelet/bubbletea"
)

func cmdSearch(d Deps, q catalogapp.Query) tea.Cmd {
	return func() tea.Msg {
		products, err := d.Catalog.Search(context.Background(), q)
		if err != nil {
			return errMsg{err}
		}
		return productsLoadedMsg{products: products}
	}
}

func cmdLoadCategories(d Deps) tea.Cmd {
	return func() tea.Msg {
		cats, err := d.Catalog.ListCategories(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return categoriesLoadedMsg{categories: cats}
	}
}

func cmdLoadCart(d Deps) tea.Cmd {
	return func() tea.Msg {
		snap, err := d.Cart.GetCart(context.Background(), d.SessionID)
		if err != nil {
			return errMsg{err}
		}
		return cartUpdatedMsg{snap: snap}
	}
}

func cmdAddToCart(d Deps, p *catalogdomain.Product) tea.Cmd {
	return func() tea.Msg {
		snap, err := d.Cart.AddItem(context.Background(), d.SessionID, p, 1)
		if err != nil {
			return errMsg{err}
		}
		return cartUpdatedMsg{snap: snap}
	}
}

func cmdSetQuantity(d Deps, productID string, qty int) tea.Cmd {
	return func() tea.Msg {
		snap, err := d.Cart.SetQuantity(context.Background(), d.SessionID, productID, qty)
		if err != nil {
			return errMsg{err}
		}
		return cartUpdatedMsg{snap: snap}
	}
}

func cmdRemoveItem(d Deps, productID string) tea.Cmd {
	return func() tea.Msg {
		snap, err := d.Cart.RemoveItem(context.Background(), d.SessionID, productID)
		if err != nil {
			return errMsg{err}
		}
		return cartUpdatedMsg{snap: snap}
	}
}

func cmdBeginCheckout(d Deps) tea.Cmd {
	return func() tea.Msg {
		var prefill checkoutdomain.ShippingDetails
		if d.Auth != nil {
			if ident, ok := d.Auth.Current(); ok {
				prefill.FirstName, prefill.LastName = ident.SplitName()
				prefill.Email = ident.Email
			}
		}

		at, err := d.Checkout.Begin(context.Background(), d.SessionID, prefill)
		if err != nil {
			return errMsg{err}
		}
		sum, err := d.Checkout.Summary(context.Background(), d.SessionID)
		if err != nil {
			return errMsg{err}
		}
		return checkoutStartedMsg{attempt: at, summary: sum}
	}
}

func cmdLoadOrders(d Deps) tea.Cmd {
	return func() tea.Msg {
		orders, err := d.Orders.ListOrders(context.Background(), d.SessionID)
		if err != nil {
			return errMsg{err}
		}
		return ordersLoadedMsg{orders: orders}
	}
}

func cmdLoadSummary(d Deps) tea.Cmd {
	return func() tea.Msg {
		sum, err := d.Checkout.Summary(context.Background(), d.SessionID)
		if err != nil {
			return errMsg{err}
		}
		return summaryLoadedMsg{summary: sum}
	}
}
