package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cardapio/internal/repo"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CartSessionCookie identifies a storefront visitor's cart
const CartSessionCookie = "cart_session"

// StoreResolver resolves the tenant for public storefront routes. The
// store is identified by its subdomain, taken from the :subdomain route
// param, the X-Store-Subdomain header or the Host header, in that order.
func StoreResolver(tenantRepo *repo.TenantRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subdomain := resolveSubdomain(c)
			if subdomain == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "Loja não identificada",
				})
			}

			tenant, err := tenantRepo.GetBySubdomain(subdomain)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusNotFound, map[string]string{
						"error": "Loja não encontrada",
					})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "Erro ao verificar loja",
				})
			}

			c.Set("tenant_id", tenant.ID)
			c.Set("tenant", tenant)

			return next(c)
		}
	}
}

func resolveSubdomain(c echo.Context) string {
	if param := c.Param("subdomain"); param != "" {
		return strings.ToLower(param)
	}

	if header := c.Request().Header.Get("X-Store-Subdomain"); header != "" {
		return strings.ToLower(header)
	}

	host := c.Request().Host
	if colon := strings.Index(host, ":"); colon != -1 {
		host = host[:colon]
	}
	// first label of loja.example.com; bare domains have no store
	parts := strings.Split(host, ".")
	if len(parts) >= 3 {
		return strings.ToLower(parts[0])
	}
	return ""
}

// CartSession guarantees a session cookie on every storefront request,
// issuing a new one on first visit
func CartSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CartSessionCookie)
			if err != nil || cookie.Value == "" {
				cookie = &http.Cookie{
					Name:     CartSessionCookie,
					Value:    uuid.New().String(),
					Path:     "/",
					Expires:  time.Now().Add(30 * 24 * time.Hour),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				}
				c.SetCookie(cookie)
			}

			c.Set("cart_session", cookie.Value)
			return next(c)
		}
	}
}

// StoreContext bundles the resolved tenant and session for handlers
type StoreContext struct {
	TenantID   uuid.UUID
	Tenant     *models.Tenant
	SessionKey string
}

// GetStoreContext extracts the storefront context set by the middlewares
func GetStoreContext(c echo.Context) *StoreContext {
	tenantID, _ := c.Get("tenant_id").(uuid.UUID)
	tenant, _ := c.Get("tenant").(*models.Tenant)
	sessionKey, _ := c.Get("cart_session").(string)

	return &StoreContext{
		TenantID:   tenantID,
		Tenant:     tenant,
		SessionKey: sessionKey,
	}
}
