package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	userRequest "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/user/request"
	userResponse "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/user/response"
	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type UserHandler struct {
	usecase domain.UserUsecase
}

func NewUserHandler(usecase domain.UserUsecase) *UserHandler {
	return &UserHandler{usecase: usecase}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req userRequest.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.usecase.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrUsernameRequired), errors.Is(err, domain.ErrPasswordTooShort):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, userResponse.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req userRequest.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.usecase.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, userResponse.TokenResponse{AccessToken: token})
}

func (h *UserHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	balance, err := h.usecase.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, userResponse.BalanceResponse{Balance: balance})
}
