package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardapio/pkg/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func product(name, price string, categoryID *uuid.UUID, halfHalf, available bool) models.Product {
	return models.Product{
		Name:           name,
		Price:          dec(price),
		CategoryID:     categoryID,
		AllowsHalfHalf: halfHalf,
		IsAvailable:    available,
	}
}

func TestLineTotalPlain(t *testing.T) {
	p := product("X-Burguer", "20.00", nil, false, true)

	if got := LineTotal(p, 2, nil, nil); !got.Equal(dec("40.00")) {
		t.Errorf("LineTotal = %s, expected 40.00", got)
	}
}

func TestLineTotalWithOptions(t *testing.T) {
	p := product("X-Burguer", "20.00", nil, false, true)
	opts := []SelectedOption{
		{GroupName: "Adicionais", OptionName: "Bacon", Price: dec("3.50")},
		{GroupName: "Adicionais", OptionName: "Cheddar", Price: dec("2.50")},
	}

	if got := LineTotal(p, 2, opts, nil); !got.Equal(dec("52.00")) {
		t.Errorf("LineTotal = %s, expected 52.00", got)
	}
}

func TestLineTotalHalfHalfTakesMax(t *testing.T) {
	calabresa := product("Calabresa", "30.00", nil, true, true)
	quatroQueijos := product("Quatro Queijos", "35.00", nil, true, true)

	half := &HalfHalf{FirstHalf: &calabresa, SecondHalf: &quatroQueijos}
	base := product("Pizza", "28.00", nil, true, true)

	if got := LineTotal(base, 1, nil, half); !got.Equal(dec("35.00")) {
		t.Errorf("LineTotal = %s, expected 35.00", got)
	}
	if got := LineTotal(base, 3, nil, half); !got.Equal(dec("105.00")) {
		t.Errorf("LineTotal qty 3 = %s, expected 105.00", got)
	}
}

func TestLineTotalHalfHalfIgnoresOptions(t *testing.T) {
	a := product("A", "30.00", nil, true, true)
	b := product("B", "35.00", nil, true, true)
	half := &HalfHalf{FirstHalf: &a, SecondHalf: &b}

	opts := []SelectedOption{{GroupName: "Borda", OptionName: "Catupiry", Price: dec("8.00")}}
	if got := LineTotal(a, 1, opts, half); !got.Equal(dec("35.00")) {
		t.Errorf("options must not apply in half-half mode, got %s", got)
	}
}

func TestLineTotalHalfHalfDegenerateCases(t *testing.T) {
	a := product("A", "30.00", nil, true, true)

	oneHalf := &HalfHalf{FirstHalf: &a}
	if got := LineTotal(a, 1, nil, oneHalf); !got.Equal(dec("30.00")) {
		t.Errorf("single half must price at that half, got %s", got)
	}

	empty := &HalfHalf{}
	if got := LineTotal(a, 1, nil, empty); !got.Equal(decimal.Zero) {
		t.Errorf("no halves chosen must total zero, got %s", got)
	}
}

func TestMinimumOrderGap(t *testing.T) {
	tests := []struct {
		subtotal string
		minimum  string
		expected string
	}{
		{"40.00", "50.00", "10.00"},
		{"50.00", "50.00", "0"},
		{"55.00", "50.00", "0"},
		{"0", "0", "0"},
	}

	for _, test := range tests {
		got := MinimumOrderGap(dec(test.subtotal), dec(test.minimum))
		if !got.Equal(dec(test.expected)) {
			t.Errorf("MinimumOrderGap(%s, %s) = %s, expected %s", test.subtotal, test.minimum, got, test.expected)
		}
		if got.IsNegative() {
			t.Errorf("gap must never be negative, got %s", got)
		}
	}
}

func TestCartTotalsScenario(t *testing.T) {
	// one item 20.00 x2, zone fee 5.00, minimum 50.00
	subtotal := Subtotal([]decimal.Decimal{dec("40.00")})
	if !subtotal.Equal(dec("40.00")) {
		t.Fatalf("subtotal = %s, expected 40.00", subtotal)
	}
	if gap := MinimumOrderGap(subtotal, dec("50.00")); !gap.Equal(dec("10.00")) {
		t.Errorf("gap = %s, expected 10.00", gap)
	}

	// add a 15.00 item
	subtotal = Subtotal([]decimal.Decimal{dec("40.00"), dec("15.00")})
	if !subtotal.Equal(dec("55.00")) {
		t.Fatalf("subtotal = %s, expected 55.00", subtotal)
	}
	if gap := MinimumOrderGap(subtotal, dec("50.00")); !gap.IsZero() {
		t.Errorf("gap = %s, expected 0", gap)
	}
	if total := Total(subtotal, dec("5.00")); !total.Equal(dec("60.00")) {
		t.Errorf("total = %s, expected 60.00", total)
	}
}

func TestHalfHalfCandidates(t *testing.T) {
	pizzas := uuid.New()
	burgers := uuid.New()

	current := product("Calabresa", "30.00", &pizzas, true, true)
	all := []models.Product{
		current,
		product("Quatro Queijos", "35.00", &pizzas, true, true),
		product("Portuguesa", "32.00", &pizzas, true, false), // unavailable
		product("Margherita", "29.00", &pizzas, false, true), // no half-half
		product("X-Bacon", "25.00", &burgers, true, true),    // other category
		product("Sem Categoria", "20.00", nil, true, true),
	}

	candidates := HalfHalfCandidates(all, current)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	for _, c := range candidates {
		if c.Name == "Portuguesa" || c.Name == "Margherita" || c.Name == "X-Bacon" {
			t.Errorf("unexpected candidate %s", c.Name)
		}
	}

	orphan := product("Avulso", "10.00", nil, true, true)
	if got := HalfHalfCandidates(all, orphan); got != nil {
		t.Errorf("product without category must have no candidates")
	}
}

func TestValidateSelections(t *testing.T) {
	p := models.Product{
		Name:  "Açaí",
		Price: dec("15.00"),
		OptionGroups: []models.OptionGroup{
			{Title: "Acompanhamentos", IsRequired: true, MaxSelect: 2},
			{Title: "Cobertura", IsRequired: false, MaxSelect: 1},
		},
	}

	ok := []SelectedOption{
		{GroupName: "Acompanhamentos", OptionName: "Granola"},
		{GroupName: "Acompanhamentos", OptionName: "Leite em pó"},
	}
	if err := ValidateSelections(p, ok, false); err != nil {
		t.Errorf("valid selection rejected: %v", err)
	}

	if err := ValidateSelections(p, nil, false); err == nil {
		t.Error("required group with no selection must fail")
	}

	tooMany := append(ok, SelectedOption{GroupName: "Acompanhamentos", OptionName: "Paçoca"})
	if err := ValidateSelections(p, tooMany, false); err == nil {
		t.Error("selection above max_select must fail")
	}

	// half-half suppresses option groups entirely
	if err := ValidateSelections(p, nil, true); err != nil {
		t.Errorf("half-half mode must skip group validation: %v", err)
	}
}
