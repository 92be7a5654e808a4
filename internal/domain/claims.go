package domain

import "github.com/golang-jwt/jwt/v5"

// Roles emitidos pelo Supabase no claim "role"
const (
	RoleAuthenticated = "authenticated"
	RoleServiceRole   = "service_role"
)

// Claims do JWT de sessão. Subject é o ID do usuário.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
