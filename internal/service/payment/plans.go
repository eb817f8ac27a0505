package payment

import (
	"errors"
	"fmt"
)

var ErrUnknownPlan = errors.New("unknown plan")

// Plan is a purchasable consultation package. Prices are IDR without
// decimals, matching what Midtrans expects in gross_amount.
type Plan struct {
	ID       string
	Name     string
	Sessions int
	Amount   int64
}

var plans = map[string]Plan{
	"single": {
		ID:       "single",
		Name:     "Konsultasi 1 Sesi",
		Sessions: 1,
		Amount:   150_000,
	},
	"triple": {
		ID:       "triple",
		Name:     "Paket Konsultasi 3 Sesi",
		Sessions: 3,
		Amount:   400_000,
	},
	"monthly": {
		ID:       "monthly",
		Name:     "Pendampingan Bulanan",
		Sessions: 4,
		Amount:   500_000,
	},
}

// PlanByID looks up a plan. Plans are fixed in code; the client only
// ever sends a plan id, never an amount.
func PlanByID(id string) (Plan, error) {
	plan, ok := plans[id]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s", ErrUnknownPlan, id)
	}
	return plan, nil
}
