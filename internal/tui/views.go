package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func intToDec(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	var body string
	switch m.scr {
	case screenBrowse:
		body = m.viewBrowse()
	case screenDetail:
		body = m.viewDetail()
	case screenCart:
		body = m.viewCart()
	case screenShipping:
		body = m.viewShipping()
	case screenPayment:
		body = m.viewPayment()
	case screenComplete:
		body = m.viewComplete()
	case screenOrders:
		body = m.viewOrders()
	}

	var errLine string
	if m.errText != "" {
		errLine = "\n" + m.theme.Error.Render(m.errText)
	}

	return wrap.Render(m.header() + "\n" + body + errLine)
}

func (m model) header() string {
	return m.theme.Title.Render("Storefront") + "  " +
		m.theme.Subtitle.Render(fmt.Sprintf("cart: %d item(s) · $%s",
			m.cart.ItemCount, m.cart.Subtotal.StringFixed(2)))
}

func (m model) viewBrowse() string {
	filter := m.categories[m.catIdx].Name
	help := m.theme.Help.Render(
		fmt.Sprintf("category: %s · sort: %s\n[enter] detail  [a] add  [c] cart  [o] orders  [f] category  [s] sort  [q] quit",
			filter, m.query.Sort))
	return m.menu.View() + "\n" + help
}

func (m model) viewDetail() string {
	p := m.selected
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(p.Name) + "\n")
	price := m.theme.Price.Render("$" + p.Price.StringFixed(2))
	if p.OriginalPrice != nil {
		price += "  " + m.theme.Strike.Render("$"+p.OriginalPrice.StringFixed(2))
	}
	b.WriteString(price + "\n\n")
	b.WriteString(p.Description + "\n\n")
	for _, f := range p.Features {
		b.WriteString("  - " + f + "\n")
	}
	b.WriteString("\n" + m.theme.Subtitle.Render(
		fmt.Sprintf("%s · %.1f stars · %d reviews", p.Category, p.Rating, p.ReviewCount)) + "\n")
	if !p.InStock {
		b.WriteString(m.theme.Error.Render("Out of stock") + "\n")
	}
	b.WriteString("\n" + m.theme.Help.Render("[a] add to cart  [esc] back"))
	return m.theme.Card.Render(b.String())
}

func (m model) viewCart() string {
	if len(m.cart.Lines) == 0 {
		return m.theme.Card.Render("Your cart is empty.\n\nAdd some products to get started.") +
			"\n" + m.theme.Help.Render("[esc] continue shopping")
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Shopping Cart (%d)", m.cart.ItemCount)) + "\n\n")
	for i, it := range m.cart.Lines {
		cursor := "  "
		if i == m.cartCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-40s x%-3d $%s", cursor, it.Product.Name, it.Quantity,
			it.Product.Price.Mul(intToDec(it.Quantity)).StringFixed(2))
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.theme.Total.Render("Subtotal: $"+m.cart.Subtotal.StringFixed(2)) + "\n")
	b.WriteString("\n" + m.theme.Help.Render("[+/-] quantity  [x] remove  [enter] checkout  [esc] back"))
	return b.String()
}

func (m model) viewShipping() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Checkout · step 1 of 2 · Shipping") + "\n\n")
	b.WriteString(m.shipForm.view(m.theme))
	b.WriteString("\n" + m.summaryView())
	b.WriteString("\n" + m.theme.Help.Render("[tab] next field  [enter] continue to payment  [esc] cancel"))
	return b.String()
}

func (m model) viewPayment() string {
	if m.settling {
		return m.theme.Card.Render(m.spin.View()+" Processing payment...") +
			"\n" + m.theme.Help.Render("[esc] abandon")
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Checkout · step 2 of 2 · Payment") + "\n\n")
	b.WriteString(m.payForm.view(m.theme))
	b.WriteString("\n" + m.summaryView())
	b.WriteString("\n" + m.theme.Help.Render("[tab] next field  [enter] complete order  [esc] back to shipping"))
	return b.String()
}

func (m model) summaryView() string {
	t := m.summary.Totals
	shipping := "$" + t.Shipping.StringFixed(2)
	if t.Shipping.IsZero() {
		shipping = "Free"
	}
	return m.theme.Card.Render(fmt.Sprintf(
		"Order Summary\n\nSubtotal: $%s\nShipping: %s\nTax:      $%s\n\nTotal:    $%s",
		t.Subtotal.StringFixed(2), shipping, t.Tax.StringFixed(2), t.GrandTotal.StringFixed(2)))
}

func (m model) viewOrders() string {
	if len(m.orders) == 0 {
		return m.theme.Card.Render("No orders yet.") +
			"\n" + m.theme.Help.Render("[esc] back")
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Your Orders") + "\n\n")
	for _, o := range m.orders {
		b.WriteString(fmt.Sprintf("  %s  %s  $%s  %s\n",
			o.CreatedAt.Format("2006-01-02 15:04"), o.Status, o.Total.StringFixed(2), o.ID))
	}
	b.WriteString("\n" + m.theme.Help.Render("[esc] back"))
	return b.String()
}

func (m model) viewComplete() string {
	return m.theme.Card.Render(fmt.Sprintf(
		"Order Complete!\n\nOrder %s\nTotal charged: $%s\n\nThank you for your purchase.",
		m.completed.OrderID, m.completed.Totals.GrandTotal.StringFixed(2))) +
		"\n" + m.theme.Help.Render("[enter] continue shopping")
}
