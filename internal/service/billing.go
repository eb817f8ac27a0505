package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/service/payment"
	"github.com/google/uuid"
)

var ErrConsultationNotOwned = errors.New("consultation does not belong to this user")

type BillingService struct {
	paymentRepo         repository.PaymentRepository
	consultationService *ConsultationService
	userRepo            repository.UserRepository
	profileRepo         repository.ProfileRepository
	emailService        *EmailService
	provider            payment.Provider
}

func NewBillingService(
	paymentRepo repository.PaymentRepository,
	consultationService *ConsultationService,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	emailService *EmailService,
	provider payment.Provider,
) *BillingService {
	return &BillingService{
		paymentRepo:         paymentRepo,
		consultationService: consultationService,
		userRepo:            userRepo,
		profileRepo:         profileRepo,
		emailService:        emailService,
		provider:            provider,
	}
}

// CheckoutResult is returned to the client so it can open the Snap
// payment page.
type CheckoutResult struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
	OrderID     string `json:"order_id"`
}

// CreatePayment opens a payment session for a consultation plan. The
// amount always comes from the in-code plan table, never from the client.
// Recording the payment row is non-fatal once the token exists: the
// webhook reconciles by order id either way.
func (s *BillingService) CreatePayment(userID, planID, consultationID string) (*CheckoutResult, error) {
	plan, err := payment.PlanByID(planID)
	if err != nil {
		return nil, err
	}

	var consultationRef *string
	if consultationID != "" {
		consultation, err := s.consultationService.ByID(consultationID)
		if err != nil {
			return nil, err
		}
		if consultation.UserID != userID {
			return nil, ErrConsultationNotOwned
		}
		consultationRef = &consultationID
	}

	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	name := "Student"
	if profile, err := s.profileRepo.ByUserID(userID); err == nil && profile.Name != "" {
		name = profile.Name
	}

	orderID := fmt.Sprintf("CP-%s", uuid.New().String())

	tx, err := s.provider.CreateTransaction(orderID, plan.Amount, user.Email, name, plan.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment transaction: %w", err)
	}

	now := time.Now()
	p := &model.Payment{
		ID:             uuid.New().String(),
		OrderID:        orderID,
		UserID:         userID,
		ConsultationID: consultationRef,
		Plan:           plan.ID,
		Amount:         plan.Amount,
		Status:         model.PaymentStatusPending,
		SnapToken:      tx.Token,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.paymentRepo.Create(p)
	if err != nil {
		// The token is already issued; losing the row only delays
		// reconciliation until the webhook arrives.
		slog.Error("failed to record payment after token issuance", "error", err, "order_id", orderID, "user_id", userID)
	}

	return &CheckoutResult{
		Token:       tx.Token,
		RedirectURL: tx.RedirectURL,
		OrderID:     orderID,
	}, nil
}

// HandleNotification processes a verified gateway webhook: it updates
// the payment row and, on settlement, confirms the linked consultation
// and sends a receipt.
func (s *BillingService) HandleNotification(n payment.Notification) error {
	status, err := s.provider.VerifyNotification(n)
	if err != nil {
		return err
	}

	p, err := s.paymentRepo.ByOrderID(n.OrderID)
	if err != nil {
		return fmt.Errorf("payment lookup failed for order %s: %w", n.OrderID, err)
	}

	// Settled is terminal; replayed notifications must not regress it
	if p.Status == model.PaymentStatusSettled {
		slog.Info("ignoring notification for settled payment", "order_id", n.OrderID, "status", status)
		return nil
	}

	err = s.paymentRepo.UpdateStatus(n.OrderID, status)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	slog.Info("payment status updated", "order_id", n.OrderID, "status", status)

	if status != model.PaymentStatusSettled {
		return nil
	}

	if p.ConsultationID != nil {
		err = s.consultationService.Confirm(*p.ConsultationID)
		if err != nil {
			slog.Error("failed to confirm consultation after settlement", "error", err, "consultation_id", *p.ConsultationID)
		} else {
			s.notifyConfirmed(p.UserID, *p.ConsultationID)
		}
	}

	s.sendReceipt(p)
	return nil
}

func (s *BillingService) PaymentsByUser(userID string) ([]*model.Payment, error) {
	return s.paymentRepo.ByUser(userID)
}

func (s *BillingService) sendReceipt(p *model.Payment) {
	user, err := s.userRepo.ByID(p.UserID)
	if err != nil {
		slog.Warn("failed to load user for payment receipt", "error", err, "user_id", p.UserID)
		return
	}

	name := ""
	if profile, err := s.profileRepo.ByUserID(p.UserID); err == nil {
		name = profile.Name
	}

	err = s.emailService.SendPaymentReceiptEmail(user.Email, name, p.OrderID, p.Amount)
	if err != nil {
		slog.Warn("failed to send payment receipt", "error", err, "order_id", p.OrderID)
	}
}

func (s *BillingService) notifyConfirmed(userID, consultationID string) {
	consultation, err := s.consultationService.ByID(consultationID)
	if err != nil {
		return
	}

	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return
	}

	name := ""
	if profile, err := s.profileRepo.ByUserID(userID); err == nil {
		name = profile.Name
	}

	err = s.emailService.SendConsultationConfirmedEmail(
		user.Email,
		name,
		consultation.Topic,
		consultation.ScheduledAt.Format("Monday, 2 January 2006 15:04"),
	)
	if err != nil {
		slog.Warn("failed to send consultation confirmation", "error", err, "consultation_id", consultationID)
	}
}
