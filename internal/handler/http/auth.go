package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{User: user.Public()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: user.Token, User: user.Public()}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	verificationToken := chi.URLParam(r, "verificationToken")

	if err := h.services.AuthService.Verify(r.Context(), verificationToken); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgVerificationSuccessful}, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	var req models.ResendVerificationRequest
	// an empty body is reported by the service as a missing email
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeError(w, r, err)
		return
	}

	if !h.resendLimiter.Allow(req.Email) {
		writeError(w, r, errTooManyRequests)
		return
	}

	alreadyVerified, err := h.services.AuthService.ResendVerification(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if alreadyVerified {
		writeError(w, r, errVerificationAlreadyPassed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgVerificationEmailSent}, http.StatusOK)
}
