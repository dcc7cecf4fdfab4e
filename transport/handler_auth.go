package transport

import (
	"net/http"

	"github.com/muhammadheryan/wms/model"
)

// Login handler
// @Summary Login user
// @Description Login with username and password and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.Envelope{data=model.LoginResponse}
// @Failure 401 {object} model.Envelope
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Deletes the caller's session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Envelope
// @Router /api/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.UserApp.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, true)
}

// Refresh handler
// @Summary Refresh token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Failure 501 {object} model.Envelope
// @Router /api/auth/refresh [post]
func (s *RestHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	writeError(w, s.UserApp.Refresh(r.Context()))
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Envelope{data=model.UserResponse}
// @Router /api/auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.Me(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List users
// @Description Admin only
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Envelope{data=[]model.UserResponse}
// @Failure 403 {object} model.Envelope
// @Router /api/admin/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
