// Package whatsapp turns a composed order message into the deep link the
// customer's browser opens to hand the order to the store's WhatsApp.
package whatsapp

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// countryCode is prefixed when the configured number carries no country code
const countryCode = "55"

var nonDigits = regexp.MustCompile(`\D`)

// ErrNoDestination means the store has no WhatsApp number configured.
// Checkout must be blocked before this is ever reached.
var ErrNoDestination = errors.New("número de WhatsApp da loja não configurado")

// Dispatcher builds the outbound channel link for an order message. It is
// the only place external I/O leaves the checkout flow, kept behind an
// interface so tests can capture dispatches.
type Dispatcher interface {
	Dispatch(phoneNumber, text string) (string, error)
}

// LinkDispatcher is the production dispatcher: it normalizes the phone and
// returns the wa.me compose URL for the storefront to open.
type LinkDispatcher struct{}

// NewLinkDispatcher creates the default dispatcher
func NewLinkDispatcher() *LinkDispatcher {
	return &LinkDispatcher{}
}

// Dispatch normalizes the destination to digits, prefixes the Brazilian
// country code when absent and builds the message-compose URL.
func (d *LinkDispatcher) Dispatch(phoneNumber, text string) (string, error) {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	if digits == "" {
		return "", ErrNoDestination
	}

	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}

	link := "https://wa.me/" + digits + "?text=" + encodeText(text)

	log.Info().Str("phone", digits).Int("message_len", len(text)).Msg("Order dispatched to WhatsApp")
	return link, nil
}

// encodeText percent-encodes the message body. Spaces become %20, not +,
// so the text survives WhatsApp's URL parsing intact.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
