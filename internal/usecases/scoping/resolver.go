// Package scoping resolve a identidade do chamador para o filtro de
// visibilidade aplicado em todas as consultas de agregação
package scoping

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

var (
	// ErrUnauthorizedScope indica uma identidade sem escopo utilizável,
	// por exemplo um papel de regional sem regional vinculada. Nunca é
	// alargado silenciosamente para "sem restrição".
	ErrUnauthorizedScope = errors.New("identidade sem escopo utilizável")

	// ErrUnknownRole indica um papel fora da tabela conhecida
	ErrUnknownRole = errors.New("papel de usuário desconhecido")
)

// Resolve converte a identidade no filtro de escopo correspondente.
// Matriz enxerga tudo; regional enxerga a própria regional; loja enxerga
// a própria loja. Toda consulta do motor de agregação aplica este filtro
// antes de qualquer outro predicado.
func Resolve(identity domain.Identity) (domain.ScopeFilter, error) {
	switch identity.Role {
	case domain.RoleHeadquarters:
		return domain.ScopeFilter{}, nil

	case domain.RoleBranch:
		if identity.BranchID == nil {
			return domain.ScopeFilter{}, errors.Wrap(ErrUnauthorizedScope, "papel de regional sem regional vinculada")
		}
		return domain.ScopeFilter{BranchID: identity.BranchID}, nil

	case domain.RoleStore:
		if identity.StoreID == nil {
			return domain.ScopeFilter{}, errors.Wrap(ErrUnauthorizedScope, "papel de loja sem loja vinculada")
		}
		return domain.ScopeFilter{StoreID: identity.StoreID}, nil
	}

	return domain.ScopeFilter{}, errors.Wrapf(ErrUnknownRole, "role_id=%d", identity.Role)
}
