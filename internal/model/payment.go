package model

// PaymentMethod is one of the fixed set of supported payment routes.
type PaymentMethod string

const (
	PaymentWise    PaymentMethod = "Wise"
	PaymentMonCash PaymentMethod = "MonCash"
	PaymentBank    PaymentMethod = "Bank"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentWise, PaymentMonCash, PaymentBank:
		return true
	}
	return false
}

// PaymentDetails tells the buyer where to send the money for a chosen
// method: a human-readable label plus the destination value (seller tag or
// phone number).
type PaymentDetails struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PaymentStep is the captured state of a checkout in progress: the chosen
// method, the cart total at the moment of checkout, the seller tag taken
// from the first cart line, and the resolved routing details.
type PaymentStep struct {
	Method  PaymentMethod  `json:"method"`
	Total   float64        `json:"total"`
	Seller  string         `json:"seller"`
	Details PaymentDetails `json:"details"`
}
