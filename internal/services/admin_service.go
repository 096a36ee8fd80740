package services

import (
	"crypto/subtle"

	"supplierhub/internal/models"
)

// AdminService authenticates the back-office operator. Authentication is
// deliberately a placeholder: a single configured credential pair and a
// static token, not a real session or JWT scheme.
type AdminService struct {
	email    string
	password string
	token    string
}

// NewAdminService creates a new AdminService from configured credentials.
func NewAdminService(email, password, token string) *AdminService {
	return &AdminService{
		email:    email,
		password: password,
		token:    token,
	}
}

// Login checks the operator credentials and returns the static admin
// token on success.
func (s *AdminService) Login(email, password string) (string, error) {
	if s.email == "" || s.password == "" {
		return "", models.ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !emailOK || !passOK {
		return "", models.ErrInvalidCredentials
	}
	return s.token, nil
}

// ValidToken reports whether a presented bearer token matches the
// configured admin token.
func (s *AdminService) ValidToken(token string) bool {
	if s.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}
