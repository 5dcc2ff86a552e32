package domain

// WompiTransaction carries the gateway charge parameters. Amounts use the
// commerce API's cent convention for COP.
type WompiTransaction struct {
	AmountInCents    int64  `json:"amountInCents"`
	AmountInCentsIva int64  `json:"amountInCentsIva"`
	Currency         string `json:"currency"`
	Installments     int    `json:"installments"`
	RedirectURL      string `json:"redirectUrl"`
	CustomerEmail    string `json:"customerEmail"`
	PaymentToken     string `json:"paymentToken"`
}

type InitiatePaymentRequest struct {
	OrderID int64            `json:"orderId"`
	Wompi   WompiTransaction `json:"wompi"`
}

type PaymentInitiation struct {
	Reference     string `json:"reference"`
	AmountInCents int64  `json:"amountInCents"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customerEmail"`
	PublicKey     string `json:"publicKey"`
}
