package cart

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// memorySnapshots is an in-memory SnapshotStore for tests
type memorySnapshots struct {
	data     map[string]State
	saveErr  error
	loadErr  error
	saves    int
	deletes  int
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{data: make(map[string]State)}
}

func (m *memorySnapshots) Load(key string) (*State, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if state, ok := m.data[key]; ok {
		return &state, nil
	}
	return nil, nil
}

func (m *memorySnapshots) Save(key string, state *State) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = state.clone()
	return nil
}

func (m *memorySnapshots) Delete(key string) error {
	m.deletes++
	delete(m.data, key)
	return nil
}

func item(name, total string, qty int) Item {
	return Item{
		ProductID:   uuid.New(),
		ProductName: name,
		Quantity:    qty,
		ItemTotal:   dec(total),
	}
}

func TestAddItemNeverMerges(t *testing.T) {
	store := NewStore("s1", nil)

	a := store.AddItem(item("X-Burguer", "20.00", 1))
	b := store.AddItem(item("X-Burguer", "20.00", 1))

	state := store.Snapshot()
	if len(state.Items) != 2 {
		t.Fatalf("expected 2 separate lines, got %d", len(state.Items))
	}
	if a.ID == b.ID {
		t.Error("each added line must get its own id")
	}
	if state.Items[0].ID != a.ID || state.Items[1].ID != b.ID {
		t.Error("insertion order must be preserved")
	}
}

func TestRemoveItem(t *testing.T) {
	store := NewStore("s1", nil)
	a := store.AddItem(item("A", "10.00", 1))
	store.AddItem(item("B", "15.00", 1))

	store.RemoveItem(a.ID)
	if got := len(store.Snapshot().Items); got != 1 {
		t.Fatalf("expected 1 item after removal, got %d", got)
	}

	// removing an unknown id is a no-op
	store.RemoveItem(uuid.New())
	if got := len(store.Snapshot().Items); got != 1 {
		t.Fatalf("expected 1 item after no-op removal, got %d", got)
	}
}

func TestUpdateQuantityScalesCachedTotal(t *testing.T) {
	store := NewStore("s1", nil)
	// unit price 23.50 (base + options), frozen at creation
	line := store.AddItem(item("X-Burguer", "23.50", 1))

	if err := store.UpdateQuantity(line.ID, 3); err != nil {
		t.Fatal(err)
	}
	if got := store.Snapshot().Items[0].ItemTotal; !got.Equal(dec("70.50")) {
		t.Errorf("item_total = %s, expected 70.50", got)
	}

	// scaling invariant holds transitively: n then m equals unit*m
	if err := store.UpdateQuantity(line.ID, 2); err != nil {
		t.Fatal(err)
	}
	if got := store.Snapshot().Items[0].ItemTotal; !got.Equal(dec("47.00")) {
		t.Errorf("item_total = %s, expected 47.00", got)
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	store := NewStore("s1", nil)
	line := store.AddItem(item("A", "30.00", 2))

	if err := store.UpdateQuantity(line.ID, 0); err != nil {
		t.Fatal(err)
	}
	got := store.Snapshot().Items[0]
	if got.Quantity != 1 {
		t.Errorf("quantity = %d, expected clamp to 1", got.Quantity)
	}
	if !got.ItemTotal.Equal(dec("15.00")) {
		t.Errorf("item_total = %s, expected 15.00", got.ItemTotal)
	}
}

func TestUpdateQuantityUnknownIDRollsBack(t *testing.T) {
	store := NewStore("s1", nil)
	store.AddItem(item("A", "10.00", 1))

	if err := store.UpdateQuantity(uuid.New(), 5); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if got := store.Snapshot().Items[0].Quantity; got != 1 {
		t.Errorf("failed command must leave state untouched, quantity = %d", got)
	}
}

func TestClearResetsContext(t *testing.T) {
	store := NewStore("s1", nil)
	store.AddItem(item("A", "10.00", 1))
	store.SetCustomer(Customer{Name: "Ana", Phone: "27997790000"})
	zone := uuid.New()
	store.SetDelivery(Delivery{Type: DeliveryTypeDelivery, ZoneID: &zone, ZoneName: "Centro", ZonePrice: dec("5.00")})
	store.SetPayment(Payment{Method: PaymentCash})

	store.Clear()

	state := store.Snapshot()
	if len(state.Items) != 0 {
		t.Error("clear must empty the items")
	}
	if state.Customer.Name != "" || state.Customer.Phone != "" {
		t.Error("clear must reset the customer block")
	}
	if state.Delivery.Type != DeliveryTypeDelivery || state.Delivery.ZoneID != nil {
		t.Error("clear must reset delivery to defaults")
	}
	if state.Payment.Method != PaymentPix {
		t.Error("clear must reset payment to pix")
	}
}

func TestTotalsAndDeliveryFee(t *testing.T) {
	store := NewStore("s1", nil)
	store.AddItem(item("A", "40.00", 2))
	store.SetDelivery(Delivery{Type: DeliveryTypeDelivery, ZoneName: "Centro", ZonePrice: dec("5.00")})

	state := store.Snapshot()
	if !state.Subtotal().Equal(dec("40.00")) {
		t.Errorf("subtotal = %s, expected 40.00", state.Subtotal())
	}
	if !state.Total().Equal(dec("45.00")) {
		t.Errorf("total = %s, expected 45.00", state.Total())
	}

	store.SetDelivery(Delivery{Type: DeliveryTypePickup})
	state = store.Snapshot()
	if !state.DeliveryFee().IsZero() {
		t.Error("pickup must have zero delivery fee")
	}
	if !state.Total().Equal(dec("40.00")) {
		t.Errorf("pickup total = %s, expected 40.00", state.Total())
	}
}

func TestSnapshotPersistenceRoundTrip(t *testing.T) {
	snapshots := newMemorySnapshots()

	store := NewStore("session-a", snapshots)
	line := store.AddItem(item("A", "20.00", 1))
	store.SetCustomer(Customer{Name: "Ana"})

	// a new store for the same session restores the persisted state
	restored := NewStore("session-a", snapshots)
	state := restored.Snapshot()
	if len(state.Items) != 1 || state.Items[0].ID != line.ID {
		t.Fatal("restored cart must contain the persisted line")
	}
	if state.Customer.Name != "Ana" {
		t.Error("restored cart must keep the checkout context")
	}
}

func TestPersistenceFailuresAreSwallowed(t *testing.T) {
	snapshots := newMemorySnapshots()
	snapshots.saveErr = errors.New("storage offline")

	store := NewStore("session-a", snapshots)
	store.AddItem(item("A", "20.00", 1))

	if got := len(store.Snapshot().Items); got != 1 {
		t.Error("save failure must not lose the in-memory mutation")
	}
	if snapshots.saves == 0 {
		t.Error("save must have been attempted")
	}
}

func TestRestoredSnapshotRepairsZeroQuantity(t *testing.T) {
	snapshots := newMemorySnapshots()

	corrupted := item("A", "30.00", 1)
	corrupted.ID = uuid.New()
	corrupted.Quantity = 0
	snapshots.data["session-a"] = State{Items: []Item{corrupted}}

	store := NewStore("session-a", snapshots)
	if got := store.Snapshot().Items[0].Quantity; got != 1 {
		t.Fatalf("restored quantity = %d, expected clamp to 1", got)
	}

	// the rescale divides by the stored quantity; a zero row must not panic
	if err := store.UpdateQuantity(corrupted.ID, 3); err != nil {
		t.Fatal(err)
	}
	if got := store.Snapshot().Items[0].ItemTotal; !got.Equal(dec("90.00")) {
		t.Errorf("item_total = %s, expected 90.00", got)
	}
}

func TestLoadFailureDegradesToEmptyCart(t *testing.T) {
	snapshots := newMemorySnapshots()
	snapshots.loadErr = errors.New("storage offline")

	store := NewStore("session-a", snapshots)
	if got := len(store.Snapshot().Items); got != 0 {
		t.Error("load failure must degrade to an empty cart")
	}
}

func TestManagerReusesStorePerSession(t *testing.T) {
	manager := NewManager(newMemorySnapshots())

	a := manager.Get("s1")
	if manager.Get("s1") != a {
		t.Error("same session must get the same store instance")
	}
	if manager.Get("s2") == a {
		t.Error("different sessions must get different stores")
	}

	manager.Release("s1")
	if manager.Get("s1") == a {
		t.Error("released session must get a fresh store")
	}
}
