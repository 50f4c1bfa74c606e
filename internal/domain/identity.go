package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis da rede: matriz, regional e loja
const (
	RoleHeadquarters = 1
	RoleBranch       = 2
	RoleStore        = 3
)

// Identity representa o chamador autenticado de uma requisição de analytics.
// É construída uma vez por requisição a partir das claims do token e é
// somente leitura dentro do núcleo.
type Identity struct {
	UserID   int  `json:"user_id"`
	Role     int  `json:"role"`
	BranchID *int `json:"branch_id,omitempty"`
	StoreID  *int `json:"store_id,omitempty"`
}

// ScopeFilter restringe as consultas ao subconjunto de dados que a
// identidade pode enxergar. No máximo um dos dois campos é preenchido:
// escopo de loja já implica o escopo da regional.
type ScopeFilter struct {
	BranchID *int
	StoreID  *int
}

// Unrestricted indica escopo de matriz (nenhuma restrição aplicada)
func (f ScopeFilter) Unrestricted() bool {
	return f.BranchID == nil && f.StoreID == nil
}

type Claims struct {
	UserID       int    `json:"user_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	UserRoleID   int    `json:"user_role_id"`
	UserBranchID *int   `json:"user_branch_id,omitempty"`
	UserStoreID  *int   `json:"user_store_id,omitempty"`
	jwt.RegisteredClaims
}

// Identity monta a identidade do chamador a partir das claims do token
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		Role:     c.UserRoleID,
		BranchID: c.UserBranchID,
		StoreID:  c.UserStoreID,
	}
}
