package domain

import "time"

// User é o usuário autenticável do painel. O gerenciamento de contas fica
// fora deste serviço; aqui o usuário existe apenas como fonte da identidade.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	BranchID     *int       `json:"branch_id,omitempty"`
	StoreID      *int       `json:"store_id,omitempty"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
