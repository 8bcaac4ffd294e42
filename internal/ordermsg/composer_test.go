package ordermsg

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"cardapio/internal/cart"
	"cardapio/internal/pricing"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func deliveryOrder() OrderContext {
	return OrderContext{
		CustomerName:  "Ana Silva",
		CustomerPhone: "(27) 99779-0000",
		DeliveryType:  cart.DeliveryTypeDelivery,
		ZoneName:      "Centro",
		Address:       "Rua A, 123",
		Complement:    "Apto 2",
		PaymentMethod: cart.PaymentPix,
		PixKey:        "loja@email.com",
		Items: []cart.Item{
			{
				ProductName: "X-Burguer",
				Quantity:    2,
				ItemTotal:   dec("47.00"),
				Observation: "sem cebola",
				SelectedOptions: []pricing.SelectedOption{
					{GroupName: "Adicionais", OptionName: "Bacon", Price: dec("3.50")},
				},
			},
			{
				ProductName: "Pizza Grande",
				Quantity:    1,
				ItemTotal:   dec("35.00"),
				HalfHalf: &cart.HalfHalfInfo{
					Enabled:    true,
					FirstHalf:  "Calabresa",
					SecondHalf: "Quatro Queijos",
					FinalPrice: dec("35.00"),
				},
			},
		},
		Subtotal:    dec("82.00"),
		DeliveryFee: dec("5.00"),
		Total:       dec("87.00"),
	}
}

func TestComposeDeliveryOrder(t *testing.T) {
	expected := strings.Join([]string{
		"*NOVO PEDIDO - CARDÁPIO DIGITAL*",
		"",
		"*Cliente:* Ana Silva",
		"*Telefone:* (27) 99779-0000",
		"--------------------------------",
		"*2x X-Burguer*",
		"   + Bacon",
		"   _Obs: sem cebola_",
		"   R$ 47,00",
		"",
		"*1x Pizza Grande*",
		"   ½ Calabresa + ½ Quatro Queijos",
		"   R$ 35,00",
		"",
		"--------------------------------",
		"*ENTREGA:*",
		"*Bairro:* Centro",
		"*Endereço:* Rua A, 123",
		"*Complemento:* Apto 2",
		"",
		"--------------------------------",
		"*PAGAMENTO:*",
		"*Forma:* PIX",
		"*Chave PIX:* loja@email.com",
		"",
		"--------------------------------",
		"*RESUMO:*",
		"Subtotal: R$ 82,00",
		"Taxa de Entrega: R$ 5,00",
		"*TOTAL: R$ 87,00*",
		"_Pedido gerado via Cardápio Digital_",
	}, "\n")

	if got := Compose(deliveryOrder()); got != expected {
		t.Errorf("Compose mismatch:\n--- got ---\n%s\n--- expected ---\n%s", got, expected)
	}
}

func TestComposeDeliveryFeeLineOnlyForDelivery(t *testing.T) {
	order := deliveryOrder()

	if got := Compose(order); !strings.Contains(got, "Taxa de Entrega: R$ 5,00") {
		t.Error("delivery order must carry the delivery fee line")
	}

	order.DeliveryType = cart.DeliveryTypePickup
	order.DeliveryFee = decimal.Zero
	got := Compose(order)
	if strings.Contains(got, "Taxa de Entrega") {
		t.Error("pickup order must not show a fee line, not even as zero")
	}
	if !strings.Contains(got, "*RETIRADA NO LOCAL*") {
		t.Error("pickup order must render the pickup block")
	}

	order.DeliveryType = cart.DeliveryTypeTable
	order.TableNumber = 7
	got = Compose(order)
	if strings.Contains(got, "Taxa de Entrega") {
		t.Error("table order must not show a fee line")
	}
	if !strings.Contains(got, "*Mesa:* 7") {
		t.Error("table order must carry the table number")
	}
}

func TestComposePaymentVariants(t *testing.T) {
	order := deliveryOrder()

	order.PaymentMethod = cart.PaymentCash
	change := dec("100.00")
	order.ChangeFor = &change
	got := Compose(order)
	if !strings.Contains(got, "*Forma:* Dinheiro") {
		t.Error("cash payment must render Dinheiro")
	}
	if !strings.Contains(got, "*Troco para:* R$ 100,00") {
		t.Error("cash payment with change must render the change line")
	}
	if strings.Contains(got, "*Chave PIX:*") {
		t.Error("pix key line must only appear for pix payments")
	}

	order.PaymentMethod = cart.PaymentCard
	order.ChangeFor = nil
	got = Compose(order)
	if !strings.Contains(got, "*Forma:* Cartão na Entrega") {
		t.Error("card payment must render Cartão na Entrega")
	}

	order.PaymentMethod = cart.PaymentCounter
	if !strings.Contains(Compose(order), "*Forma:* Pagar no Balcão") {
		t.Error("counter payment must render Pagar no Balcão")
	}

	order.PaymentMethod = cart.PaymentPix
	order.PixKey = ""
	if strings.Contains(Compose(order), "*Chave PIX:*") {
		t.Error("pix without a configured key must omit the key line")
	}
}

func TestComposeCollapsesBlankRuns(t *testing.T) {
	got := Compose(deliveryOrder())
	if strings.Contains(got, "\n\n\n") {
		t.Error("composed message must never contain more than one consecutive blank line")
	}
}

func TestComposeSectionOrder(t *testing.T) {
	got := Compose(deliveryOrder())

	sections := []string{
		"*NOVO PEDIDO - CARDÁPIO DIGITAL*",
		"*Cliente:*",
		"*2x X-Burguer*",
		"*ENTREGA:*",
		"*PAGAMENTO:*",
		"*RESUMO:*",
		"_Pedido gerado via Cardápio Digital_",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(got, section)
		if idx < 0 {
			t.Fatalf("section %q missing from message", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}
