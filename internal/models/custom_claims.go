package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by access tokens. The subject
// of RegisteredClaims holds the user ID.
type CustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Scope string `json:"scope,omitempty"`
}
