package payment

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerKey = "SB-Mid-server-testkey"

func signedNotification(orderID, statusCode, grossAmount, txStatus, fraudStatus string) Notification {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	return Notification{
		OrderID:           orderID,
		StatusCode:        statusCode,
		GrossAmount:       grossAmount,
		SignatureKey:      hex.EncodeToString(sum[:]),
		TransactionStatus: txStatus,
		FraudStatus:       fraudStatus,
	}
}

func testProvider() *MidtransProvider {
	return &MidtransProvider{serverKey: testServerKey}
}

func TestVerifyNotificationRejectsBadSignature(t *testing.T) {
	p := testProvider()

	n := signedNotification("CP-1", "200", "150000.00", "settlement", "")
	n.SignatureKey = "deadbeef"

	_, err := p.VerifyNotification(n)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyNotificationRejectsTamperedAmount(t *testing.T) {
	p := testProvider()

	n := signedNotification("CP-1", "200", "150000.00", "settlement", "")
	n.GrossAmount = "1.00"

	_, err := p.VerifyNotification(n)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyNotificationStatusMapping(t *testing.T) {
	p := testProvider()

	cases := []struct {
		txStatus    string
		fraudStatus string
		want        string
	}{
		{"settlement", "", model.PaymentStatusSettled},
		{"capture", "accept", model.PaymentStatusSettled},
		{"capture", "challenge", model.PaymentStatusPending},
		{"pending", "", model.PaymentStatusPending},
		{"deny", "", model.PaymentStatusFailed},
		{"cancel", "", model.PaymentStatusFailed},
		{"failure", "", model.PaymentStatusFailed},
		{"expire", "", model.PaymentStatusExpired},
	}

	for _, tc := range cases {
		n := signedNotification("CP-1", "200", "150000.00", tc.txStatus, tc.fraudStatus)
		got, err := p.VerifyNotification(n)
		require.NoError(t, err, tc.txStatus)
		assert.Equal(t, tc.want, got, tc.txStatus)
	}
}

func TestVerifyNotificationUnknownStatus(t *testing.T) {
	p := testProvider()

	n := signedNotification("CP-1", "200", "150000.00", "refund", "")
	_, err := p.VerifyNotification(n)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSignature)
}

func TestPlanAmountsFixedInCode(t *testing.T) {
	plan, err := PlanByID("single")
	require.NoError(t, err)
	assert.Equal(t, int64(150_000), plan.Amount)

	_, err = PlanByID("platinum")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}
