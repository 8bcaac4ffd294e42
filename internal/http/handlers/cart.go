package handlers

import (
	"errors"
	"net/http"
	"time"

	"cardapio/internal/cart"
	"cardapio/internal/http/middleware"
	"cardapio/internal/pricing"
	"cardapio/internal/repo"
	"cardapio/internal/services"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CartHandler owns the storefront session cart endpoints
type CartHandler struct {
	carts       *services.CartService
	checkout    *services.CheckoutService
	productRepo *repo.ProductRepository
	zoneRepo    *repo.DeliveryZoneRepository
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *services.CartService, checkout *services.CheckoutService, productRepo *repo.ProductRepository, zoneRepo *repo.DeliveryZoneRepository) *CartHandler {
	return &CartHandler{
		carts:       carts,
		checkout:    checkout,
		productRepo: productRepo,
		zoneRepo:    zoneRepo,
	}
}

// CartView is the cart state plus its derived totals
type CartView struct {
	cart.State
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Total           decimal.Decimal `json:"total"`
	MinimumOrderGap decimal.Decimal `json:"minimum_order_gap"`
}

func (h *CartHandler) view(c echo.Context) CartView {
	sc := middleware.GetStoreContext(c)
	state := h.carts.Store(sc.TenantID, sc.SessionKey).Snapshot()

	return CartView{
		State:           state,
		Subtotal:        state.Subtotal(),
		DeliveryFee:     state.DeliveryFee(),
		Total:           state.Total(),
		MinimumOrderGap: pricing.MinimumOrderGap(state.Subtotal(), sc.Tenant.MinimumOrder),
	}
}

// Get godoc
// @Summary Get cart
// @Description Get the session cart with its totals
// @Tags cart
// @Produce json
// @Success 200 {object} CartView
// @Router /store/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.view(c))
}

// AddItemRequest adds one line to the cart. Options are referenced by ID
// and priced server-side; half_half_with picks the second flavor.
type AddItemRequest struct {
	ProductID    uuid.UUID   `json:"product_id" validate:"required"`
	Quantity     int         `json:"quantity" validate:"min=1"`
	Observation  string      `json:"observation"`
	OptionIDs    []uuid.UUID `json:"option_ids"`
	HalfHalfWith *uuid.UUID  `json:"half_half_with"`
}

// AddItem godoc
// @Summary Add cart item
// @Description Add a line to the cart. Identical additions create separate lines.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Item data"
// @Success 201 {object} CartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /store/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.productRepo.GetByID(sc.TenantID, req.ProductID)
	if err != nil || !product.IsAvailable {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "produto não disponível"})
	}

	item := cart.Item{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Observation: req.Observation,
	}

	var halfHalf *pricing.HalfHalf
	if req.HalfHalfWith != nil {
		second, err := h.resolveSecondHalf(sc.TenantID, product, *req.HalfHalfWith)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		halfHalf = &pricing.HalfHalf{FirstHalf: product, SecondHalf: second}
		item.HalfHalf = &cart.HalfHalfInfo{
			Enabled:    true,
			FirstHalf:  product.Name,
			SecondHalf: second.Name,
			FinalPrice: halfHalf.UnitPrice(),
		}
		item.SelectedOptions = nil
	} else {
		selections, err := resolveOptions(product, req.OptionIDs)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if err := pricing.ValidateSelections(*product, selections, false); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		item.SelectedOptions = selections
	}

	item.ItemTotal = pricing.LineTotal(*product, req.Quantity, item.SelectedOptions, halfHalf)

	h.carts.Store(sc.TenantID, sc.SessionKey).AddItem(item)
	return c.JSON(http.StatusCreated, h.view(c))
}

func (h *CartHandler) resolveSecondHalf(tenantID uuid.UUID, first *models.Product, secondID uuid.UUID) (*models.Product, error) {
	if !first.AllowsHalfHalf {
		return nil, errors.New("produto não permite meio a meio")
	}

	second, err := h.productRepo.GetByID(tenantID, secondID)
	if err != nil || !second.IsAvailable || !second.AllowsHalfHalf {
		return nil, errors.New("segundo sabor não disponível")
	}

	if first.CategoryID == nil || second.CategoryID == nil || *first.CategoryID != *second.CategoryID {
		return nil, errors.New("sabores devem ser da mesma categoria")
	}
	return second, nil
}

func resolveOptions(product *models.Product, optionIDs []uuid.UUID) ([]pricing.SelectedOption, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}

	byID := make(map[uuid.UUID]pricing.SelectedOption)
	for _, group := range product.OptionGroups {
		for _, opt := range group.Options {
			byID[opt.ID] = pricing.SelectedOption{
				GroupName:  group.Title,
				OptionName: opt.Name,
				Price:      opt.Price,
			}
		}
	}

	selections := make([]pricing.SelectedOption, 0, len(optionIDs))
	for _, id := range optionIDs {
		sel, ok := byID[id]
		if !ok {
			return nil, errors.New("opção inválida para este produto")
		}
		selections = append(selections, sel)
	}
	return selections, nil
}

// UpdateQuantity godoc
// @Summary Update item quantity
// @Description Change a line's quantity; values below 1 are clamped to 1
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body map[string]int true "New quantity"
// @Success 200 {object} CartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /store/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	store := h.carts.Store(sc.TenantID, sc.SessionKey)
	if err := store.UpdateQuantity(id, req.Quantity); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, h.view(c))
}

// RemoveItem godoc
// @Summary Remove cart item
// @Description Remove a line from the cart; unknown IDs are a no-op
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} CartView
// @Failure 400 {object} map[string]string
// @Router /store/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
	}

	h.carts.Store(sc.TenantID, sc.SessionKey).RemoveItem(id)
	return c.JSON(http.StatusOK, h.view(c))
}

// SetCustomer godoc
// @Summary Set customer info
// @Description Set the checkout identity block
// @Tags cart
// @Accept json
// @Produce json
// @Param customer body cart.Customer true "Customer data"
// @Success 200 {object} CartView
// @Failure 400 {object} map[string]string
// @Router /store/cart/customer [put]
func (h *CartHandler) SetCustomer(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	var req cart.Customer
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	h.carts.Store(sc.TenantID, sc.SessionKey).SetCustomer(req)
	return c.JSON(http.StatusOK, h.view(c))
}

// SetDeliveryRequest selects the fulfillment mode
type SetDeliveryRequest struct {
	Type        string     `json:"type" validate:"required,oneof=delivery pickup table"`
	ZoneID      *uuid.UUID `json:"zone_id"`
	TableNumber int        `json:"table_number"`
}

// SetDelivery godoc
// @Summary Set delivery mode
// @Description Select delivery, pickup or table service. The zone fee is
// @Description resolved server-side from the zone ID.
// @Tags cart
// @Accept json
// @Produce json
// @Param delivery body SetDeliveryRequest true "Delivery data"
// @Success 200 {object} CartView
// @Failure 400 {object} map[string]string
// @Router /store/cart/delivery [put]
func (h *CartHandler) SetDelivery(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	var req SetDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	delivery := cart.Delivery{Type: req.Type, ZonePrice: decimal.Zero}

	switch req.Type {
	case cart.DeliveryTypeDelivery:
		if req.ZoneID != nil {
			zone, err := h.zoneRepo.GetByID(sc.TenantID, *req.ZoneID)
			if err != nil || !zone.IsActive {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "bairro de entrega inválido"})
			}
			delivery.ZoneID = &zone.ID
			delivery.ZoneName = zone.Name
			delivery.ZonePrice = zone.Price
		}
	case cart.DeliveryTypeTable:
		if !sc.Tenant.TableModeEnabled {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "consumo no local não está habilitado"})
		}
		if req.TableNumber < 1 || (sc.Tenant.TableCount > 0 && req.TableNumber > sc.Tenant.TableCount) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "número de mesa inválido"})
		}
		delivery.TableNumber = req.TableNumber
	}

	h.carts.Store(sc.TenantID, sc.SessionKey).SetDelivery(delivery)
	return c.JSON(http.StatusOK, h.view(c))
}

// SetPaymentRequest selects the payment method
type SetPaymentRequest struct {
	Method     string           `json:"method" validate:"required,oneof=pix card cash counter"`
	CashChange *decimal.Decimal `json:"cash_change"`
}

// SetPayment godoc
// @Summary Set payment method
// @Description Select the payment method; cash may carry a change-for amount
// @Tags cart
// @Accept json
// @Produce json
// @Param payment body SetPaymentRequest true "Payment data"
// @Success 200 {object} CartView
// @Failure 400 {object} map[string]string
// @Router /store/cart/payment [put]
func (h *CartHandler) SetPayment(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	var req SetPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	payment := cart.Payment{Method: req.Method}
	if req.Method == cart.PaymentCash {
		payment.CashChange = req.CashChange
	}

	h.carts.Store(sc.TenantID, sc.SessionKey).SetPayment(payment)
	return c.JSON(http.StatusOK, h.view(c))
}

// Checkout godoc
// @Summary Checkout
// @Description Validate the cart and get the WhatsApp link for the order.
// @Description The cart is cleared after a successful dispatch.
// @Tags cart
// @Produce json
// @Success 200 {object} services.CheckoutResult
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /store/cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	result, err := h.checkout.Checkout(sc.Tenant, sc.SessionKey, time.Now())
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// Clear godoc
// @Summary Clear cart
// @Description Empty the cart and reset customer, delivery and payment data
// @Tags cart
// @Produce json
// @Success 200 {object} CartView
// @Router /store/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	h.carts.Store(sc.TenantID, sc.SessionKey).Clear()
	return c.JSON(http.StatusOK, h.view(c))
}

// RegisterRoutes registers the session cart routes
func (h *CartHandler) RegisterRoutes(e *echo.Group) {
	cartGroup := e.Group("/cart")

	cartGroup.GET("", h.Get)
	cartGroup.DELETE("", h.Clear)
	cartGroup.POST("/items", h.AddItem)
	cartGroup.PUT("/items/:id", h.UpdateQuantity)
	cartGroup.DELETE("/items/:id", h.RemoveItem)
	cartGroup.PUT("/customer", h.SetCustomer)
	cartGroup.PUT("/delivery", h.SetDelivery)
	cartGroup.PUT("/payment", h.SetPayment)
	cartGroup.POST("/checkout", h.Checkout)
}
