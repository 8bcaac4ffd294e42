// Package ordermsg renders a completed cart as the plain-text order
// message sent through the WhatsApp deep link. The output is a stable
// textual contract: labels, bold/italic markers and separators must match
// the messages already arriving at store owners' phones.
package ordermsg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"cardapio/internal/cart"
	"cardapio/pkg/money"
)

const separator = "--------------------------------"

var blankRuns = regexp.MustCompile(`\n{3,}`)

// OrderContext bundles everything the message needs
type OrderContext struct {
	CustomerName  string
	CustomerPhone string

	DeliveryType string // delivery, pickup or table
	ZoneName     string
	Address      string
	Complement   string
	TableNumber  int

	PaymentMethod string // pix, card, cash or counter
	PixKey        string
	ChangeFor     *decimal.Decimal

	Items       []cart.Item
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Compose renders the full order message. Section order is fixed: header,
// customer, items, fulfillment, payment, totals, footer. Runs of blank
// lines collapse to a single blank line.
func Compose(order OrderContext) string {
	header := "*NOVO PEDIDO - CARDÁPIO DIGITAL*"

	customerInfo := strings.Join([]string{
		"*Cliente:* " + order.CustomerName,
		"*Telefone:* " + order.CustomerPhone,
		separator,
	}, "\n")

	itemLines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		itemLines = append(itemLines, renderItem(item))
	}
	itemsList := strings.Join(itemLines, "\n\n")

	message := strings.Join([]string{
		header,
		"",
		customerInfo,
		itemsList,
		"",
		fulfillmentBlock(order),
		"",
		paymentBlock(order),
		"",
		totalsBlock(order),
		"_Pedido gerado via Cardápio Digital_",
	}, "\n")

	return blankRuns.ReplaceAllString(message, "\n\n")
}

func renderItem(item cart.Item) string {
	var b strings.Builder
	b.WriteString("*" + strconv.Itoa(item.Quantity) + "x " + item.ProductName + "*")

	if item.HalfHalf != nil && item.HalfHalf.Enabled {
		b.WriteString("\n   ½ " + item.HalfHalf.FirstHalf + " + ½ " + item.HalfHalf.SecondHalf)
	}

	for _, opt := range item.SelectedOptions {
		b.WriteString("\n   + " + opt.OptionName)
	}

	if item.Observation != "" {
		b.WriteString("\n   _Obs: " + item.Observation + "_")
	}

	b.WriteString("\n   " + money.FormatBRL(item.ItemTotal))
	return b.String()
}

func fulfillmentBlock(order OrderContext) string {
	switch order.DeliveryType {
	case cart.DeliveryTypeDelivery:
		lines := []string{
			separator,
			"*ENTREGA:*",
			"*Bairro:* " + order.ZoneName,
			"*Endereço:* " + order.Address,
		}
		if order.Complement != "" {
			lines = append(lines, "*Complemento:* "+order.Complement)
		}
		return strings.Join(lines, "\n")
	case cart.DeliveryTypeTable:
		return strings.Join([]string{
			separator,
			"*CONSUMO NO LOCAL*",
			"*Mesa:* " + strconv.Itoa(order.TableNumber),
		}, "\n")
	default:
		return strings.Join([]string{
			separator,
			"*RETIRADA NO LOCAL*",
		}, "\n")
	}
}

func paymentBlock(order OrderContext) string {
	lines := []string{
		separator,
		"*PAGAMENTO:*",
		"*Forma:* " + paymentLabel(order.PaymentMethod),
	}
	if order.PaymentMethod == cart.PaymentPix && order.PixKey != "" {
		lines = append(lines, "*Chave PIX:* "+order.PixKey)
	}
	if order.PaymentMethod == cart.PaymentCash && order.ChangeFor != nil {
		lines = append(lines, "*Troco para:* "+money.FormatBRL(*order.ChangeFor))
	}
	return strings.Join(lines, "\n")
}

func paymentLabel(method string) string {
	switch method {
	case cart.PaymentPix:
		return "PIX"
	case cart.PaymentCard:
		return "Cartão na Entrega"
	case cart.PaymentCash:
		return "Dinheiro"
	case cart.PaymentCounter:
		return "Pagar no Balcão"
	default:
		return method
	}
}

func totalsBlock(order OrderContext) string {
	lines := []string{
		separator,
		"*RESUMO:*",
		"Subtotal: " + money.FormatBRL(order.Subtotal),
	}
	// the fee line only exists for delivery, it is never shown as zero
	if order.DeliveryType == cart.DeliveryTypeDelivery {
		lines = append(lines, "Taxa de Entrega: "+money.FormatBRL(order.DeliveryFee))
	}
	lines = append(lines, "*TOTAL: "+money.FormatBRL(order.Total)+"*")
	return strings.Join(lines, "\n")
}
