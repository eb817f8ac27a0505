package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/careerpathid/careerpath/internal/apperror"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/scoring"
	"github.com/careerpathid/careerpath/internal/service"
	"github.com/careerpathid/careerpath/internal/service/payment"
	"github.com/careerpathid/careerpath/internal/validation"
)

// ErrorResponse is the error shape every endpoint returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode json response", "error", err)
		}
	}
}

// errorStatuses maps domain sentinels to HTTP. Ordered: first match wins.
var errorStatuses = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrInvalidCurrentPassword, http.StatusUnauthorized, "invalid_credentials"},
	{service.ErrConsultationNotOwned, http.StatusForbidden, "forbidden"},

	{repository.ErrCareerAlreadySelected, http.StatusConflict, "conflict"},
	{repository.ErrAlreadyEnrolled, http.StatusConflict, "conflict"},
	{repository.ErrAlreadyApplied, http.StatusConflict, "conflict"},
	{repository.ErrJobAlreadySaved, http.StatusConflict, "conflict"},
	{repository.ErrAlreadyLiked, http.StatusConflict, "conflict"},
	{repository.ErrSkillAlreadyAdded, http.StatusConflict, "conflict"},
	{repository.ErrDuplicateEmail, http.StatusConflict, "conflict"},
	{service.ErrEmailAlreadyExists, http.StatusConflict, "conflict"},

	{repository.ErrCareerNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrSkillNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrUserSkillNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrJobNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrSavedJobMissing, http.StatusNotFound, "not_found"},
	{repository.ErrCourseNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrEnrollmentNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrPostNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrLikeNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrTargetNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrCertificateNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrProjectNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrConsultationNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrPaymentNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrWellnessLogNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrUserNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrProfileNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrFileNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrDraftNotFound, http.StatusNotFound, "not_found"},

	{service.ErrPostContentRequired, http.StatusBadRequest, "validation_error"},
	{service.ErrPostTooLong, http.StatusBadRequest, "validation_error"},
	{service.ErrTopicRequired, http.StatusBadRequest, "validation_error"},
	{service.ErrScheduleInPast, http.StatusBadRequest, "validation_error"},
	{service.ErrTitleRequired, http.StatusBadRequest, "validation_error"},
	{service.ErrTargetDescriptionRequired, http.StatusBadRequest, "validation_error"},
	{service.ErrTargetLimitReached, http.StatusUnprocessableEntity, "limit_reached"},
	{service.ErrProgressBackwards, http.StatusUnprocessableEntity, "validation_error"},
	{service.ErrInvalidProgress, http.StatusBadRequest, "validation_error"},
	{service.ErrNegativeHours, http.StatusBadRequest, "validation_error"},
	{service.ErrStepIncomplete, http.StatusUnprocessableEntity, "step_incomplete"},
	{service.ErrOnboardingComplete, http.StatusUnprocessableEntity, "onboarding_incomplete"},
	{service.ErrInvalidEmail, http.StatusBadRequest, "validation_error"},
	{scoring.ErrInvalidProficiency, http.StatusBadRequest, "validation_error"},
	{scoring.ErrIncompleteQuestionnaire, http.StatusBadRequest, "validation_error"},
	{scoring.ErrAnswerOutOfRange, http.StatusBadRequest, "validation_error"},
	{payment.ErrUnknownPlan, http.StatusBadRequest, "validation_error"},
	{validation.ErrInvalidMonth, http.StatusBadRequest, "validation_error"},
}

// writeError translates service and repository errors to HTTP. Unknown
// errors become an opaque 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		code := "internal_error"
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status, code = http.StatusBadRequest, "validation_error"
		case errors.Is(err, apperror.ErrNotFound):
			status, code = http.StatusNotFound, "not_found"
		case errors.Is(err, apperror.ErrUnauthorized):
			status, code = http.StatusUnauthorized, "unauthorized"
		case errors.Is(err, apperror.ErrForbidden):
			status, code = http.StatusForbidden, "forbidden"
		case errors.Is(err, apperror.ErrConflict):
			status, code = http.StatusConflict, "conflict"
		}
		writeJSON(w, status, ErrorResponse{Error: code, Message: appErr.Message})
		return
	}

	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			writeJSON(w, m.status, ErrorResponse{Error: m.code, Message: m.err.Error()})
			return
		}
	}

	slog.Error("unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}

// writeValidationError reports a request-shape problem (bad JSON, missing
// field) without going through the sentinel table.
func writeValidationError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: message})
}

// decodeJSON reads a request body into dst with a sane size cap.
func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
