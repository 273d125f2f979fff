// Package tui is the interactive storefront: browsing, cart, and the
// two-step checkout, all driven by a single bubbletea event loop. Every
// cart mutation and checkout transition happens in Update, so effects
// apply strictly in event order.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/auth"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenBrowse screen = iota
	screenDetail
	screenCart
	screenShipping
	screenPayment
	screenComplete
	screenOrders
)

type Deps struct {
	Catalog   *catalogapp.Service
	Cart      *cartapp.Service
	Checkout  *checkoutapp.Service
	Orders    *orderapp.Service
	Auth      *auth.Provider
	SessionID string
	Log       *slog.Logger
}

var sortKeys = []catalogapp.SortKey{
	catalogapp.SortFeatured,
	catalogapp.SortPriceLow,
	catalogapp.SortPriceHigh,
	catalogapp.SortRating,
	catalogapp.SortNewest,
}

type productItem struct {
	p *catalogdomain.Product
}

func (it productItem) Title() string {
	title := it.p.Name
	if it.p.IsNew {
		title += " · new"
	}
	return title
}

func (it productItem) Description() string {
	return fmt.Sprintf("%s · $%s · %.1f stars (%d reviews)",
		it.p.Category, it.p.Price.StringFixed(2), it.p.Rating, it.p.ReviewCount)
}

func (it productItem) FilterValue() string { return it.p.Name }

type model struct {
	deps  Deps
	theme Theme

	scr  screen
	menu list.Model

	query      catalogapp.Query
	categories []catalogdomain.Category
	catIdx     int
	sortIdx    int

	selected *catalogdomain.Product

	cart       cartdomain.Snapshot
	cartCursor int

	attempt  checkoutapp.Attempt
	summary  checkoutapp.Summary
	shipForm form
	payForm  form

	spin      spinner.Model
	settling  bool
	completed checkoutapp.CompletedOrder
	orders    []orderdomain.Order

	errText string

	width  int
	height int
}

// Run starts the event loop and wires the checkout completion signal
// back into it as a message.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	deps.Checkout.SetNotify(func(o checkoutapp.CompletedOrder) {
		p.Send(orderCompletedMsg(o))
	})
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Storefront"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		deps:       deps,
		theme:      DefaultTheme(),
		scr:        screenBrowse,
		menu:       l,
		query:      catalogapp.DefaultQuery(),
		categories: []catalogdomain.Category{{ID: "all", Name: "All Products"}},
		spin:       sp,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		cmdSearch(m.deps, m.query),
		cmdLoadCart(m.deps),
		cmdLoadCategories(m.deps),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case productsLoadedMsg:
		items := make([]list.Item, 0, len(msg.products))
		for _, p := range msg.products {
			items = append(items, productItem{p: p})
		}
		return m, m.menu.SetItems(items)

	case categoriesLoadedMsg:
		m.categories = append(
			[]catalogdomain.Category{{ID: "all", Name: "All Products"}},
			msg.categories...,
		)
		return m, nil

	case cartUpdatedMsg:
		m.cart = msg.snap
		if m.cartCursor >= len(m.cart.Lines) {
			m.cartCursor = len(m.cart.Lines) - 1
		}
		if m.cartCursor < 0 {
			m.cartCursor = 0
		}
		return m, nil

	case checkoutStartedMsg:
		m.attempt = msg.attempt
		m.summary = msg.summary
		m.shipForm = newShippingForm(msg.attempt.Shipping)
		m.errText = ""
		m.scr = screenShipping
		return m, nil

	case summaryLoadedMsg:
		m.summary = msg.summary
		return m, nil

	case orderCompletedMsg:
		if msg.SessionID != m.deps.SessionID {
			return m, nil
		}
		m.settling = false
		m.completed = checkoutapp.CompletedOrder(msg)
		m.scr = screenComplete
		return m, cmdLoadCart(m.deps)

	case spinner.TickMsg:
		if !m.settling {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ordersLoadedMsg:
		m.orders = msg.orders
		return m, nil

	case errMsg:
		m.errText = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.scr == screenBrowse {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.scr {
	case screenBrowse:
		return m.updateBrowse(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCart:
		return m.updateCart(msg)
	case screenShipping:
		return m.updateShipping(msg)
	case screenPayment:
		return m.updatePayment(msg)
	case screenComplete:
		switch msg.String() {
		case "enter", "esc", "q":
			m.scr = screenBrowse
			m.errText = ""
			return m, cmdSearch(m.deps, m.query)
		}
	case screenOrders:
		switch msg.String() {
		case "esc", "q":
			m.scr = screenBrowse
			return m, nil
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		if it, ok := m.menu.SelectedItem().(productItem); ok {
			m.selected = it.p
			m.scr = screenDetail
		}
		return m, nil

	case "a":
		if it, ok := m.menu.SelectedItem().(productItem); ok {
			return m, cmdAddToCart(m.deps, it.p)
		}
		return m, nil

	case "c":
		m.scr = screenCart
		m.errText = ""
		return m, cmdLoadCart(m.deps)

	case "f":
		m.catIdx = (m.catIdx + 1) % len(m.categories)
		m.query.Category = m.categories[m.catIdx].ID
		return m, cmdSearch(m.deps, m.query)

	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortKeys)
		m.query.Sort = sortKeys[m.sortIdx]
		return m, cmdSearch(m.deps, m.query)

	case "o":
		m.scr = screenOrders
		return m, cmdLoadOrders(m.deps)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return m, cmdAddToCart(m.deps, m.selected)
	case "esc", "b", "q":
		m.selected = nil
		m.scr = screenBrowse
		return m, nil
	}
	return m, nil
}

func (m model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.cart.Lines

	switch msg.String() {
	case "esc", "q":
		m.scr = screenBrowse
		return m, nil

	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case "down", "j":
		if m.cartCursor < len(lines)-1 {
			m.cartCursor++
		}
		return m, nil

	case "+":
		if m.cartCursor < len(lines) {
			it := lines[m.cartCursor]
			return m, cmdSetQuantity(m.deps, it.Product.ID, it.Quantity+1)
		}
		return m, nil

	case "-":
		// Quantity 1 minus 1 removes the line, by way of SetQuantity.
		if m.cartCursor < len(lines) {
			it := lines[m.cartCursor]
			return m, cmdSetQuantity(m.deps, it.Product.ID, it.Quantity-1)
		}
		return m, nil

	case "x", "delete":
		if m.cartCursor < len(lines) {
			return m, cmdRemoveItem(m.deps, lines[m.cartCursor].Product.ID)
		}
		return m, nil

	case "enter":
		if len(lines) == 0 {
			return m, nil
		}
		return m, cmdBeginCheckout(m.deps)
	}
	return m, nil
}

func (m model) updateShipping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.deps.Checkout.Abandon(m.deps.SessionID)
		m.scr = screenCart
		m.errText = ""
		return m, cmdLoadCart(m.deps)

	case "tab", "down":
		m.shipForm.cycleFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.shipForm.cycleFocus(-1)
		return m, nil

	case "enter":
		at, err := m.deps.Checkout.SubmitShipping(m.deps.SessionID, m.shipForm.shippingDetails())
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.attempt = at
		m.payForm = newPaymentForm(at.Payment)
		m.errText = ""
		m.scr = screenPayment
		return m, cmdLoadSummary(m.deps)
	}

	cmd := m.shipForm.update(msg)
	return m, cmd
}

func (m model) updatePayment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.settling {
		// The only way out of a pending settlement is abandoning it;
		// the scheduled continuation then settles as a no-op.
		if msg.String() == "esc" {
			m.deps.Checkout.Abandon(m.deps.SessionID)
			m.settling = false
			m.scr = screenBrowse
			return m, cmdLoadCart(m.deps)
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "b":
		at, err := m.deps.Checkout.Back(m.deps.SessionID)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.attempt = at
		m.shipForm = newShippingForm(at.Shipping)
		m.errText = ""
		m.scr = screenShipping
		return m, nil

	case "tab", "down":
		m.payForm.cycleFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.payForm.cycleFocus(-1)
		return m, nil

	case "enter":
		at, err := m.deps.Checkout.SubmitPayment(m.deps.SessionID, m.payForm.paymentDetails())
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.attempt = at
		m.settling = true
		m.errText = ""
		return m, m.spin.Tick
	}

	cmd := m.payForm.update(msg)
	return m, cmd
}
