package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/careerpathid/careerpath/internal/ctxkeys"
	"github.com/careerpathid/careerpath/internal/service"
	"github.com/careerpathid/careerpath/internal/service/payment"
)

type paymentHandler struct {
	billingService *service.BillingService
}

func NewPaymentHandler(billingService *service.BillingService) *paymentHandler {
	return &paymentHandler{billingService: billingService}
}

type createPaymentRequest struct {
	Plan           string `json:"plan"`
	ConsultationID string `json:"consultationId"`
}

func (h *paymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	result, err := h.billingService.CreatePayment(user.ID, req.Plan, req.ConsultationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *paymentHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	payments, err := h.billingService.PaymentsByUser(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// Webhook receives gateway notifications. It always answers 200 for
// verified-but-unprocessable orders so the gateway stops retrying;
// signature failures get a 403.
func (h *paymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	// Gateway notifications carry many extra fields; decode loosely
	var n payment.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeValidationError(w, "invalid notification body")
		return
	}

	err := h.billingService.HandleNotification(n)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			slog.Warn("payment notification rejected", "error", err, "order_id", n.OrderID)
			writeJSON(w, http.StatusForbidden, ErrorResponse{
				Error:   "invalid_notification",
				Message: "notification could not be verified",
			})
			return
		}
		// Transient failure: non-2xx makes the gateway retry later
		slog.Error("payment notification processing failed", "error", err, "order_id", n.OrderID)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "notification processing failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
