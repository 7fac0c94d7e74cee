package mailer

import (
	"strings"
	"testing"

	"shophub/internal/domain"
)

func testOrder() domain.Order {
	return domain.Order{
		ID: "order-1",
		Customer: domain.Customer{
			FirstName: "Jane",
			Email:     "jane@example.com",
		},
		Items: []domain.OrderItem{
			{ProductID: "1", Name: "Wireless Headphones", Price: 20.00, Quantity: 2},
			{ProductID: "2", Name: "Smart Watch", Price: 15.00, Quantity: 1},
		},
		Total: 60.50,
	}
}

func TestRenderOrder_TextBody(t *testing.T) {
	text, _, err := renderOrder(testOrder())
	if err != nil {
		t.Fatalf("renderOrder: %v", err)
	}

	for _, want := range []string{
		"Hi Jane,",
		"- Wireless Headphones (2) - $20.00",
		"- Smart Watch (1) - $15.00",
		"Total: $60.50",
		"ShopHub Team",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("text body missing %q:\n%s", want, text)
		}
	}
}

func TestRenderOrder_HTMLBody(t *testing.T) {
	_, html, err := renderOrder(testOrder())
	if err != nil {
		t.Fatalf("renderOrder: %v", err)
	}

	for _, want := range []string{
		"<strong>Wireless Headphones</strong> x 2",
		"$40.00", // line total, price x quantity
		"<strong>Smart Watch</strong> x 1",
		"Total: $60.50",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html body missing %q:\n%s", want, html)
		}
	}
}

func TestRenderOrder_EscapesHTML(t *testing.T) {
	order := testOrder()
	order.Items[0].Name = `<script>alert("x")</script>`

	_, html, err := renderOrder(order)
	if err != nil {
		t.Fatalf("renderOrder: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("item name was not escaped:\n%s", html)
	}
}
