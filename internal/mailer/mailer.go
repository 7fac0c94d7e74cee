// Package mailer renders and delivers order confirmation emails. Delivery is
// a post-commit side effect: failures are logged and suppressed, never
// surfaced to the order-submission caller, and never retried.
package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"shophub/internal/domain"
)

// Sender delivers one message to one recipient. Implementations talk to the
// external mail relay.
type Sender interface {
	Send(to, subject, textBody, htmlBody string) error
}

const subject = "Order Confirmation - ShopHub"

var htmlTmpl = template.Must(template.New("order").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee;">
  <h2 style="color: #333;">Order Confirmation</h2>
  <p>Hi {{.FirstName}},</p>
  <p>Thank you for your order! Here are your details:</p>
  <div style="background: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <ul style="list-style: none; padding: 0;">
{{- range .Items}}
      <li style="margin-bottom: 10px; border-bottom: 1px solid #eee; padding-bottom: 10px;">
        <strong>{{.Name}}</strong> x {{.Quantity}} <span style="float: right;">${{.LineTotal}}</span>
      </li>
{{- end}}
    </ul>
    <div style="text-align: right; font-weight: bold; font-size: 1.2em; margin-top: 10px;">
      Total: ${{.Total}}
    </div>
  </div>
  <p>We will notify you when your items are shipped.</p>
  <p>Best regards,<br><strong>ShopHub Team</strong></p>
</div>
`))

type emailItem struct {
	Name      string
	Quantity  int
	Price     string
	LineTotal string
}

type emailData struct {
	FirstName string
	Items     []emailItem
	Total     string
}

// renderOrder produces the plain-text and HTML bodies for an order
// confirmation. Amounts are rounded to two decimals here, at the display
// boundary.
func renderOrder(order domain.Order) (textBody, htmlBody string, err error) {
	data := emailData{
		FirstName: order.Customer.FirstName,
		Total:     fmt.Sprintf("%.2f", order.Total),
	}
	for _, item := range order.Items {
		data.Items = append(data.Items, emailItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     fmt.Sprintf("%.2f", item.Price),
			LineTotal: fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)),
		})
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nThank you for your order!\n\nOrder Details:\n", data.FirstName)
	for _, item := range data.Items {
		fmt.Fprintf(&text, "- %s (%d) - $%s\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&text, "\nTotal: $%s\n\nWe will notify you when your items are shipped.\n\nBest regards,\nShopHub Team\n", data.Total)

	var html strings.Builder
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}

	return text.String(), html.String(), nil
}
