// Package cart owns the storefront session cart: its line items, the
// checkout context (customer, delivery, payment) and the snapshot
// persistence that keeps a cart alive across visits.
package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardapio/internal/pricing"
)

// Delivery modes
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
	DeliveryTypeTable    = "table"
)

// Payment methods
const (
	PaymentPix     = "pix"
	PaymentCard    = "card"
	PaymentCash    = "cash"
	PaymentCounter = "counter"
)

// ErrItemNotFound is returned when a line id does not exist in the cart
var ErrItemNotFound = errors.New("item não encontrado no carrinho")

// HalfHalfInfo records a two-flavor combination on a cart line
type HalfHalfInfo struct {
	Enabled    bool            `json:"enabled"`
	FirstHalf  string          `json:"first_half"`
	SecondHalf string          `json:"second_half"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

// Item is one cart line. ItemTotal is a cached derived value: the unit
// price is frozen at creation (options cannot be edited afterwards) and
// quantity changes only rescale the cached total.
type Item struct {
	ID              uuid.UUID                `json:"id"`
	ProductID       uuid.UUID                `json:"product_id"`
	ProductName     string                   `json:"product_name"`
	Quantity        int                      `json:"quantity"`
	ItemTotal       decimal.Decimal          `json:"item_total"`
	Observation     string                   `json:"observation,omitempty"`
	SelectedOptions []pricing.SelectedOption `json:"selected_options"`
	HalfHalf        *HalfHalfInfo            `json:"half_half,omitempty"`
}

// Customer is the checkout identity block
type Customer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Complement string `json:"complement,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// Delivery is the fulfillment selection
type Delivery struct {
	Type        string          `json:"type"`
	ZoneID      *uuid.UUID      `json:"zone_id"`
	ZoneName    string          `json:"zone_name"`
	ZonePrice   decimal.Decimal `json:"zone_price"`
	TableNumber int             `json:"table_number,omitempty"`
}

// Payment is the payment selection
type Payment struct {
	Method     string           `json:"method"`
	CashChange *decimal.Decimal `json:"cash_change,omitempty"`
}

// State is the full serializable cart state
type State struct {
	Items    []Item   `json:"items"`
	Customer Customer `json:"customer"`
	Delivery Delivery `json:"delivery"`
	Payment  Payment  `json:"payment"`
}

// DefaultState returns an empty cart with the default checkout context
func DefaultState() State {
	return State{
		Items:    []Item{},
		Delivery: Delivery{Type: DeliveryTypeDelivery, ZonePrice: decimal.Zero},
		Payment:  Payment{Method: PaymentPix},
	}
}

func (s *State) clone() State {
	out := *s
	out.Items = make([]Item, len(s.Items))
	copy(out.Items, s.Items)
	for i := range out.Items {
		if len(s.Items[i].SelectedOptions) > 0 {
			opts := make([]pricing.SelectedOption, len(s.Items[i].SelectedOptions))
			copy(opts, s.Items[i].SelectedOptions)
			out.Items[i].SelectedOptions = opts
		}
		if s.Items[i].HalfHalf != nil {
			hh := *s.Items[i].HalfHalf
			out.Items[i].HalfHalf = &hh
		}
	}
	return out
}

// DeliveryFee is zero for pickup and table modes
func (s *State) DeliveryFee() decimal.Decimal {
	if s.Delivery.Type != DeliveryTypeDelivery {
		return decimal.Zero
	}
	return s.Delivery.ZonePrice
}

// Subtotal sums the cached line totals
func (s *State) Subtotal() decimal.Decimal {
	totals := make([]decimal.Decimal, len(s.Items))
	for i, item := range s.Items {
		totals[i] = item.ItemTotal
	}
	return pricing.Subtotal(totals)
}

// Total is subtotal plus the delivery fee
func (s *State) Total() decimal.Decimal {
	return pricing.Total(s.Subtotal(), s.DeliveryFee())
}
