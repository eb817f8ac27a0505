package payment

// Provider defines the interface a payment gateway must implement.
type Provider interface {
	// CreateTransaction opens a payment session for an order and returns
	// the token and redirect URL the client uses to pay.
	CreateTransaction(orderID string, amount int64, customerEmail, customerName, itemName string) (*Transaction, error)

	// VerifyNotification checks a webhook notification's signature and
	// returns the normalized payment status for the order.
	VerifyNotification(n Notification) (string, error)

	// Name returns the provider name (e.g. "midtrans")
	Name() string
}

// Transaction is the result of opening a payment session.
type Transaction struct {
	Token       string
	RedirectURL string
}

// Notification is the subset of a gateway webhook payload needed to
// verify and settle a payment.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
