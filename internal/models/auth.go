package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest carries credentials from the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TeacherInfo describes the authenticated teacher.
type TeacherInfo struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// LoginResponse bundles the issued token with the teacher profile.
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	ExpiresIn   int64       `json:"expiresIn"`
	IssuedAt    time.Time   `json:"issuedAt"`
	Teacher     TeacherInfo `json:"teacher"`
}

// JWTClaims extends the registered claims with the teacher identity.
type JWTClaims struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}
