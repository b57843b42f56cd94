package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type AuthHandler struct {
	auth  service.AuthService
	users service.UserService
}

func NewAuthHandler(auth service.AuthService, users service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Address == "" || req.PhoneNumber == "" {
		fail(w, domain.Invalid("Missing required fields: name, email, password, address, phone_number"))
		return
	}

	user, access, refresh, err := h.auth.Register(r.Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Registration successful", tokenResponse{User: user, AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		fail(w, domain.Invalid("Missing email or password"))
		return
	}

	user, access, refresh, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Login successful", tokenResponse{User: user, AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}

	access, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Token refreshed", map[string]string{"access_token": access})
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	user, err := h.users.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Success", user)
}

type profileUpdateRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r.Context())
	var req profileUpdateRequest
	if err := decode(r, &req); err != nil {
		fail(w, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), actor.UserID, service.ProfileUpdate{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, "Profile updated successfully", user)
}
