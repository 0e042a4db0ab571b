package controllers

import (
	"net/http"

	"github.com/ecofinds/ecofinds/app/services"
	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/ecofinds/ecofinds/pkg/logger"
	"github.com/ecofinds/ecofinds/pkg/response"
)

// AuthController serves registration, login and profile management.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{auth: s}
}

// Register handles POST /api/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if !decode(w, r, &in) {
		return
	}

	user, err := c.auth.Register(in)
	if err != nil {
		fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "user_id", user.ID)
	response.Created(w, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !decode(w, r, &in) {
		return
	}

	token, user, err := c.auth.Login(in.Email, in.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Profile handles GET /api/profile.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	user, err := c.auth.Profile(userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, user)
}

// UpdateProfile handles PUT /api/profile.
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var in services.ProfileInput
	if !decode(w, r, &in) {
		return
	}

	user, err := c.auth.UpdateProfile(userID, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, user)
}

type passwordRequest struct {
	NewPassword string `json:"new_password"`
}

// UpdatePassword handles PUT /api/password.
func (c *AuthController) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var in passwordRequest
	if !decode(w, r, &in) {
		return
	}
	if in.NewPassword == "" {
		response.ValidationError(w, map[string]string{"new_password": "The new_password field is required."})
		return
	}

	if _, err := c.auth.UpdateProfile(userID, services.ProfileInput{NewPassword: in.NewPassword}); err != nil {
		fail(w, r, err)
		return
	}
	response.Message(w, "Password updated.")
}
