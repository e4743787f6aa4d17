package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillbridge/skillbridge/internal/common"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// writeDetail writes the {"detail": ...} error envelope.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	_, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, common.ErrDuplicateAccount):
		writeDetail(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, common.ErrValidation):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.logger.Error(r.Context(), "signup failed", "error", err.Error())
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "User created successfully"})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		writeDetail(w, http.StatusBadRequest, "Invalid credentials")
	case err != nil:
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeJSON(w, http.StatusOK, map[string]string{
			"access_token": result.AccessToken,
			"role":         result.Role,
		})
	}
}

func (s *Server) handleResumeUploadURL(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeDetail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.resumes == nil {
		writeDetail(w, http.StatusServiceUnavailable, "Resume storage is not configured")
		return
	}

	key, url, err := s.resumes.UploadURL(r.Context(), claims.Email)
	if err != nil {
		s.logger.Error(r.Context(), "presign failed", "error", err.Error())
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"storage_key": key,
		"upload_url":  url,
	})
}
