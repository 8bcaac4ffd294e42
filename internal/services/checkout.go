package services

import (
	"errors"
	"fmt"
	"time"

	"cardapio/internal/cart"
	"cardapio/internal/ordermsg"
	"cardapio/internal/validators"
	"cardapio/internal/whatsapp"
	"cardapio/pkg/models"
	"cardapio/pkg/money"

	"github.com/rs/zerolog/log"
)

// Checkout failure modes the storefront maps to user-facing toasts
var (
	ErrStoreClosed       = errors.New("a loja está fechada no momento")
	ErrEmptyCart         = errors.New("o carrinho está vazio")
	ErrNoZoneSelected    = errors.New("selecione o bairro de entrega")
	ErrNoAddress         = errors.New("informe o endereço de entrega")
	ErrNoTableNumber     = errors.New("informe o número da mesa")
	ErrStoreUnconfigured = errors.New("a loja ainda não configurou o WhatsApp para receber pedidos")
)

// CheckoutResult carries the dispatch link back to the storefront. The
// cart is already cleared when this is returned.
type CheckoutResult struct {
	Link    string `json:"link"`
	Message string `json:"message"`
}

// CheckoutService runs the order gates, composes the order message and
// dispatches it to the store's WhatsApp
type CheckoutService struct {
	availability *AvailabilityService
	carts        *CartService
	dispatcher   whatsapp.Dispatcher
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(availability *AvailabilityService, carts *CartService, dispatcher whatsapp.Dispatcher) *CheckoutService {
	return &CheckoutService{
		availability: availability,
		carts:        carts,
		dispatcher:   dispatcher,
	}
}

// Checkout validates the session cart against the store's rules and, when
// every gate passes, returns the WhatsApp link for the composed order.
// The cart is cleared only after a successful dispatch.
func (s *CheckoutService) Checkout(tenant *models.Tenant, sessionKey string, now time.Time) (*CheckoutResult, error) {
	open, err := s.availability.IsEffectivelyOpen(tenant, now)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrStoreClosed
	}

	if tenant.WhatsApp == "" {
		return nil, ErrStoreUnconfigured
	}

	store := s.carts.Store(tenant.ID, sessionKey)
	state := store.Snapshot()

	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := validators.ValidateName(state.Customer.Name); err != nil {
		return nil, err
	}
	if err := validators.ValidatePhone(state.Customer.Phone); err != nil {
		return nil, err
	}

	switch state.Delivery.Type {
	case cart.DeliveryTypeDelivery:
		if state.Delivery.ZoneID == nil {
			return nil, ErrNoZoneSelected
		}
		if state.Customer.Address == "" {
			return nil, ErrNoAddress
		}
	case cart.DeliveryTypeTable:
		if state.Delivery.TableNumber < 1 {
			return nil, ErrNoTableNumber
		}
	}

	subtotal := state.Subtotal()
	if gap := tenant.MinimumOrder.Sub(subtotal); gap.IsPositive() {
		return nil, fmt.Errorf("pedido mínimo de %s, faltam %s",
			money.FormatBRL(tenant.MinimumOrder), money.FormatBRL(gap))
	}

	message := ordermsg.Compose(ordermsg.OrderContext{
		CustomerName:  state.Customer.Name,
		CustomerPhone: validators.FormatPhone(state.Customer.Phone),
		DeliveryType:  state.Delivery.Type,
		ZoneName:      state.Delivery.ZoneName,
		Address:       state.Customer.Address,
		Complement:    state.Customer.Complement,
		TableNumber:   state.Delivery.TableNumber,
		PaymentMethod: state.Payment.Method,
		PixKey:        tenant.PixKey,
		ChangeFor:     state.Payment.CashChange,
		Items:         state.Items,
		Subtotal:      subtotal,
		DeliveryFee:   state.DeliveryFee(),
		Total:         state.Total(),
	})

	link, err := s.dispatcher.Dispatch(tenant.WhatsApp, message)
	if err != nil {
		return nil, err
	}

	store.Clear()

	log.Info().
		Str("tenant_id", tenant.ID.String()).
		Str("delivery_type", state.Delivery.Type).
		Str("total", state.Total().StringFixed(2)).
		Msg("Order dispatched")

	return &CheckoutResult{Link: link, Message: message}, nil
}
