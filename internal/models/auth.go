package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// OfficerInfo is the identity payload returned on successful login.
type OfficerInfo struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Role        Role   `json:"role"`
	BadgeNumber string `json:"badge_number"`
}

// LoginResponse is the `{token, user}` contract of the login endpoint.
type LoginResponse struct {
	Token string      `json:"token"`
	User  OfficerInfo `json:"user"`
}

// JWTClaims is the signed session token payload. Expiry lives inside the
// signed claims, never as external metadata.
type JWTClaims struct {
	OfficerID   int64  `json:"officer_id"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	FullName    string `json:"full_name"`
	BadgeNumber string `json:"badge_number"`
	jwt.RegisteredClaims
}
