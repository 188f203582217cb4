package models

// PaymentMethod is how an order was paid. Values outside the known set are
// kept verbatim so reports still group them under their own key.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentPix       PaymentMethod = "pix"
	PaymentCartao    PaymentMethod = "cartao"
	PaymentIfoodCard PaymentMethod = "ifood_card"
)

// KnownPaymentMethods are always present in a payment breakdown, even at zero.
var KnownPaymentMethods = []PaymentMethod{PaymentCash, PaymentPix, PaymentIfoodCard, PaymentCartao}

func (p PaymentMethod) IsKnown() bool {
	for _, m := range KnownPaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

// OrderSource is the channel the order came in through.
type OrderSource string

const (
	SourceSalon        OrderSource = "salon"
	SourceWhatsapp     OrderSource = "whatsapp"
	SourceIfood        OrderSource = "ifood"
	SourceDeliveryMush OrderSource = "delivery_mush"
	SourceAmoOferta    OrderSource = "amo_oferta"
)

var KnownOrderSources = []OrderSource{SourceSalon, SourceWhatsapp, SourceIfood, SourceDeliveryMush, SourceAmoOferta}

func (s OrderSource) IsKnown() bool {
	for _, k := range KnownOrderSources {
		if s == k {
			return true
		}
	}
	return false
}

type OrderType string

const (
	TypeDineIn   OrderType = "dine_in"
	TypeTakeaway OrderType = "takeaway"
	TypeDelivery OrderType = "delivery"
)

var KnownOrderTypes = []OrderType{TypeDineIn, TypeTakeaway, TypeDelivery}

func (t OrderType) IsKnown() bool {
	for _, k := range KnownOrderTypes {
		if t == k {
			return true
		}
	}
	return false
}
