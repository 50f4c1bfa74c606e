package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
	"github.com/vfg2006/dealer-insights-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis.
// allowedRoles é a lista de papéis com permissão para acessar a rota.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HeadquartersOnly permite acesso apenas para a matriz
func HeadquartersOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleHeadquarters})
}

// HeadquartersOrBranch permite acesso para a matriz e as regionais
func HeadquartersOrBranch() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleHeadquarters, domain.RoleBranch})
}

// BranchOrStore permite acesso para regionais e lojas
func BranchOrStore() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleBranch, domain.RoleStore})
}

// AllRoles permite acesso para qualquer papel autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleHeadquarters, domain.RoleBranch, domain.RoleStore})
}
