package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cardapio/internal/cart"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeDispatcher struct {
	lastPhone string
	lastText  string
	err       error
}

func (d *fakeDispatcher) Dispatch(phoneNumber, text string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.lastPhone = phoneNumber
	d.lastText = text
	return "https://wa.me/55" + phoneNumber, nil
}

func openTenant() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Pizzaria Teste",
		WhatsApp:  "27997790000",
		IsOpen:    true,
		PixKey:    "chave@pix.com",
	}
}

func newCheckoutFixture(dispatcher *fakeDispatcher) (*CheckoutService, *CartService) {
	carts := NewCartService(nil)
	availability := NewAvailabilityService(nil)
	return NewCheckoutService(availability, carts, dispatcher), carts
}

func fillCart(carts *CartService, tenantID uuid.UUID, session string) {
	store := carts.Store(tenantID, session)
	store.AddItem(cart.Item{
		ProductID:   uuid.New(),
		ProductName: "Pizza Calabresa",
		Quantity:    1,
		ItemTotal:   decimal.RequireFromString("45.00"),
	})
	store.SetCustomer(cart.Customer{
		Name:    "Maria Silva",
		Phone:   "27997790000",
		Address: "Rua das Flores, 100",
	})
	zoneID := uuid.New()
	store.SetDelivery(cart.Delivery{
		Type:      cart.DeliveryTypeDelivery,
		ZoneID:    &zoneID,
		ZoneName:  "Centro",
		ZonePrice: decimal.RequireFromString("8.00"),
	})
	store.SetPayment(cart.Payment{Method: cart.PaymentPix})
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	checkout, carts := newCheckoutFixture(dispatcher)
	tenant := openTenant()

	fillCart(carts, tenant.ID, "s1")

	result, err := checkout.Checkout(tenant, "s1", time.Now())
	if err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}

	if result.Link == "" {
		t.Error("expected a dispatch link")
	}
	if !strings.Contains(result.Message, "Pizza Calabresa") {
		t.Errorf("message missing item: %q", result.Message)
	}
	if !strings.Contains(result.Message, "Chave PIX:") {
		t.Errorf("pix key missing from message: %q", result.Message)
	}
	if !strings.Contains(result.Message, "TOTAL: R$ 53,00") {
		t.Errorf("expected total with delivery fee, got %q", result.Message)
	}

	if got := carts.Store(tenant.ID, "s1").Snapshot(); len(got.Items) != 0 {
		t.Errorf("cart should be empty after checkout, has %d items", len(got.Items))
	}
}

func TestCheckoutClosedStore(t *testing.T) {
	checkout, carts := newCheckoutFixture(&fakeDispatcher{})
	tenant := openTenant()
	tenant.IsOpen = false

	fillCart(carts, tenant.ID, "s1")

	if _, err := checkout.Checkout(tenant, "s1", time.Now()); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	checkout, _ := newCheckoutFixture(&fakeDispatcher{})
	tenant := openTenant()

	if _, err := checkout.Checkout(tenant, "vazio", time.Now()); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutWithoutWhatsApp(t *testing.T) {
	checkout, carts := newCheckoutFixture(&fakeDispatcher{})
	tenant := openTenant()
	tenant.WhatsApp = ""

	fillCart(carts, tenant.ID, "s1")

	if _, err := checkout.Checkout(tenant, "s1", time.Now()); !errors.Is(err, ErrStoreUnconfigured) {
		t.Errorf("expected ErrStoreUnconfigured, got %v", err)
	}
}

func TestCheckoutInvalidCustomer(t *testing.T) {
	checkout, carts := newCheckoutFixture(&fakeDispatcher{})
	tenant := openTenant()

	fillCart(carts, tenant.ID, "s1")
	carts.Store(tenant.ID, "s1").SetCustomer(cart.Customer{Name: "Maria Silva", Phone: "123"})

	if _, err := checkout.Checkout(tenant, "s1", time.Now()); err == nil {
		t.Error("expected phone validation error")
	}
}

func TestCheckoutDeliveryWithoutZone(t *testing.T) {
	checkout, carts := newCheckoutFixture(&fakeDispatcher{})
	tenant := openTenant()

	fillCart(carts, tenant.ID, "s1")
	carts.Store(tenant.ID, "s1").SetDelivery(cart.Delivery{Type: cart.DeliveryTypeDelivery})

	if _, err := checkout.Checkout(tenant, "s1", time.Now()); !errors.Is(err, ErrNoZoneSelected) {
		t.Errorf("expected ErrNoZoneSelected, got %v", err)
	}
}

func TestCheckoutTableWithoutNumber(t *testing.T) {
	checkout, carts := newCheckoutFixture(&fakeDispatcher{})
	tenant := openTenant()
	tenant.TableModeEnabled = true

	fillCart(carts, tenant.ID, "s1")
	carts.Store(tenant.ID, "s1").SetDelivery(cart.Delivery{Type: cart.DeliveryTypeTable})

	if _, err := checkout.Checkout(tenant, "s1", time.Now()); !errors.Is(err, ErrNoTableNumber) {
		t.Errorf("expected ErrNoTableNumber, got %v", err)
	}
}

func TestCheckoutBelowMinimumOrder(t *testing.T) {
	checkout, carts := newCheckoutFixture(&fakeDispatcher{})
	tenant := openTenant()
	tenant.MinimumOrder = decimal.RequireFromString("50.00")

	fillCart(carts, tenant.ID, "s1")

	// subtotal is 45.00, fee does not count toward the minimum
	_, err := checkout.Checkout(tenant, "s1", time.Now())
	if err == nil {
		t.Fatal("expected minimum order error")
	}
	if !strings.Contains(err.Error(), "R$ 5,00") {
		t.Errorf("error should carry the missing amount, got %q", err.Error())
	}
}

func TestCheckoutDispatchFailureKeepsCart(t *testing.T) {
	dispatchErr := errors.New("canal indisponível")
	checkout, carts := newCheckoutFixture(&fakeDispatcher{err: dispatchErr})
	tenant := openTenant()

	fillCart(carts, tenant.ID, "s1")

	if _, err := checkout.Checkout(tenant, "s1", time.Now()); !errors.Is(err, dispatchErr) {
		t.Errorf("expected dispatch error, got %v", err)
	}

	if got := carts.Store(tenant.ID, "s1").Snapshot(); len(got.Items) != 1 {
		t.Error("cart must be preserved when dispatch fails")
	}
}
