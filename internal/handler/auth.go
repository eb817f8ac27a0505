package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/careerpathid/careerpath/internal/config"
	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type authHandler struct {
	authService       *service.AuthService
	googleOAuthConfig *oauth2.Config
	appURL            string
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: authService,
		appURL:      cfg.AppURL,
		googleOAuthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.AppURL + "/auth/google/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	h.issueSession(w, user, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.issueSession(w, user, http.StatusOK)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

type magicLinkRequest struct {
	Email string `json:"email"`
}

func (h *authHandler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	var req magicLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	err := h.authService.SendMagicLink(req.Email)
	if err != nil {
		// Same response either way so addresses can't be enumerated
		slog.Warn("magic link send failed", "error", err, "email", req.Email)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

func (h *authHandler) VerifyMagicLink(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	user, err := h.authService.VerifyMagicLink(token)
	if err != nil {
		slog.Warn("magic link verification failed", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_token",
			Message: "invalid or expired magic link",
		})
		return
	}

	h.issueSession(w, user, http.StatusOK)
}

// GoogleRedirect starts the OAuth flow with a random state cookie.
func (h *authHandler) GoogleRedirect(w http.ResponseWriter, r *http.Request) {
	state, err := generateOAuthState()
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.googleOAuthConfig.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *authHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != r.URL.Query().Get("state") {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_state", Message: "oauth state mismatch"})
		return
	}

	token, err := h.googleOAuthConfig.Exchange(context.Background(), r.URL.Query().Get("code"))
	if err != nil {
		slog.Error("google oauth exchange failed", "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "oauth_failed", Message: "could not complete sign in"})
		return
	}

	email, err := fetchGoogleEmail(token)
	if err != nil {
		slog.Error("google userinfo fetch failed", "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "oauth_failed", Message: "could not complete sign in"})
		return
	}

	user, err := h.authService.AuthenticateOAuth(email, "google")
	if err != nil {
		writeError(w, err)
		return
	}

	jwtToken, err := h.authService.GenerateJWT(user)
	if err != nil {
		writeError(w, err)
		return
	}

	h.authService.SetJWTCookie(w, jwtToken, time.Now().Add(h.authService.JWTExpiry()))
	http.Redirect(w, r, h.appURL+"/app", http.StatusSeeOther)
}

func (h *authHandler) issueSession(w http.ResponseWriter, user *model.User, status int) {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		writeError(w, err)
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))

	user.PasswordHash = nil
	writeJSON(w, status, authResponse{Token: token, User: user})
}

func generateOAuthState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func fetchGoogleEmail(token *oauth2.Token) (string, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
	}
	err = json.NewDecoder(resp.Body).Decode(&info)
	if err != nil {
		return "", err
	}
	return info.Email, nil
}
