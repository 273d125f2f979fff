package tui

import (
	"strings"

	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical stack of labelled text inputs with one focused at
// a time.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields []struct{ label, placeholder, value string }) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, fd := range fields {
		ti := textinput.New()
		ti.Placeholder = fd.placeholder
		ti.SetValue(fd.value)
		ti.CharLimit = 64
		ti.Prompt = "> "
		f.labels[i] = fd.label
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func newShippingForm(d checkoutdomain.ShippingDetails) form {
	return newForm([]struct{ label, placeholder, value string }{
		{"First Name", "", d.FirstName},
		{"Last Name", "", d.LastName},
		{"Email", "you@example.com", d.Email},
		{"Phone", "", d.Phone},
		{"Address", "", d.Address},
		{"City", "", d.City},
		{"State", "", d.State},
		{"Zip Code", "", d.ZipCode},
		{"Country", "United States", d.Country},
	})
}

func (f form) shippingDetails() checkoutdomain.ShippingDetails {
	v := f.values()
	return checkoutdomain.ShippingDetails{
		FirstName: v[0],
		LastName:  v[1],
		Email:     v[2],
		Phone:     v[3],
		Address:   v[4],
		City:      v[5],
		State:     v[6],
		ZipCode:   v[7],
		Country:   v[8],
	}
}

func newPaymentForm(d checkoutdomain.PaymentDetails) form {
	return newForm([]struct{ label, placeholder, value string }{
		{"Card Number", "1234 5678 9012 3456", d.CardNumber},
		{"Expiry Date", "MM/YY", d.ExpiryDate},
		{"CVV", "123", d.CVV},
		{"Name on Card", "", d.NameOnCard},
	})
}

func (f form) paymentDetails() checkoutdomain.PaymentDetails {
	v := f.values()
	return checkoutdomain.PaymentDetails{
		CardNumber: v[0],
		ExpiryDate: v[1],
		CVV:        v[2],
		NameOnCard: v[3],
	}
}

func (f form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (f *form) cycleFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view(t Theme) string {
	var b strings.Builder
	for i := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			b.WriteString(t.Title.Render(label))
		} else {
			b.WriteString(t.Subtitle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}
