package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis de acesso do dashboard
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// DashboardUser é um usuário declarado em configuração.
// Não há cadastro: a lista de usuários vem do ambiente.
type DashboardUser struct {
	Email        string
	PasswordHash string
	Role         string
}

// Claims são as claims do token JWT emitido no login
type Claims struct {
	UserEmail string `json:"email"`
	UserRole  string `json:"role"`
	jwt.RegisteredClaims
}
