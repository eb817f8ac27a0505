package payment

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/careerpathid/careerpath/internal/config"
	"github.com/careerpathid/careerpath/internal/model"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var ErrInvalidSignature = errors.New("invalid notification signature")

// MidtransProvider implements Provider on top of Midtrans Snap.
type MidtransProvider struct {
	client    snap.Client
	serverKey string
}

func NewMidtransProvider(cfg *config.Config) (*MidtransProvider, error) {
	if cfg.MidtransServerKey == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("MIDTRANS_SERVER_KEY is required")
		}
		// Dev without a key still boots; payment calls will fail
		slog.Warn("midtrans server key not set, payments are unavailable")
	}

	env := midtrans.Sandbox
	if cfg.MidtransProduction {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(cfg.MidtransServerKey, env)

	slog.Info("initializing payment provider", "provider", "midtrans", "production", cfg.MidtransProduction)

	return &MidtransProvider{
		client:    client,
		serverKey: cfg.MidtransServerKey,
	}, nil
}

func (p *MidtransProvider) Name() string {
	return "midtrans"
}

func (p *MidtransProvider) CreateTransaction(orderID string, amount int64, customerEmail, customerName, itemName string) (*Transaction, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderID,
				Name:  itemName,
				Price: amount,
				Qty:   1,
			},
		},
	}

	resp, err := p.client.CreateTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create snap transaction: %w", err)
	}

	return &Transaction{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// VerifyNotification validates the Midtrans signature and maps the
// transaction status to our payment status. The signature is
// sha512(order_id + status_code + gross_amount + server_key).
func (p *MidtransProvider) VerifyNotification(n Notification) (string, error) {
	payload := n.OrderID + n.StatusCode + n.GrossAmount + p.serverKey
	sum := sha512.Sum512([]byte(payload))
	expected := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) != 1 {
		return "", fmt.Errorf("%w for order %s", ErrInvalidSignature, n.OrderID)
	}

	switch n.TransactionStatus {
	case "capture":
		if n.FraudStatus == "challenge" {
			return model.PaymentStatusPending, nil
		}
		return model.PaymentStatusSettled, nil
	case "settlement":
		return model.PaymentStatusSettled, nil
	case "pending":
		return model.PaymentStatusPending, nil
	case "deny", "cancel", "failure":
		return model.PaymentStatusFailed, nil
	case "expire":
		return model.PaymentStatusExpired, nil
	default:
		return "", fmt.Errorf("unknown transaction status: %s", n.TransactionStatus)
	}
}
