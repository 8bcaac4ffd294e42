package whatsapp

import (
	"errors"
	"strings"
	"testing"
)

func TestDispatchNormalizesPhone(t *testing.T) {
	d := NewLinkDispatcher()

	tests := []struct {
		phone    string
		expected string
	}{
		{"27997790000", "https://wa.me/5527997790000"},
		{"(27) 99779-0000", "https://wa.me/5527997790000"},
		{"5527997790000", "https://wa.me/5527997790000"},
		{"+55 27 99779-0000", "https://wa.me/5527997790000"},
	}

	for _, test := range tests {
		link, err := d.Dispatch(test.phone, "oi")
		if err != nil {
			t.Fatalf("Dispatch(%q) error: %v", test.phone, err)
		}
		if !strings.HasPrefix(link, test.expected+"?text=") {
			t.Errorf("Dispatch(%q) = %q, expected prefix %q", test.phone, link, test.expected)
		}
	}
}

func TestDispatchEncodesText(t *testing.T) {
	d := NewLinkDispatcher()

	link, err := d.Dispatch("27997790000", "*NOVO PEDIDO*\nTotal: R$ 10,00")
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(link, "+") {
		t.Error("spaces must be encoded as %20, not +")
	}
	if !strings.Contains(link, "%2ANOVO%20PEDIDO%2A%0ATotal%3A%20R%24%2010%2C00") {
		t.Errorf("unexpected encoding: %q", link)
	}
}

func TestDispatchWithoutDestination(t *testing.T) {
	d := NewLinkDispatcher()

	if _, err := d.Dispatch("", "oi"); !errors.Is(err, ErrNoDestination) {
		t.Errorf("expected ErrNoDestination, got %v", err)
	}
	if _, err := d.Dispatch("abc", "oi"); !errors.Is(err, ErrNoDestination) {
		t.Errorf("non-numeric destination must fail, got %v", err)
	}
}
