package scoping

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

func intPtr(i int) *int {
	return &i
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		identity domain.Identity
		want     domain.ScopeFilter
		wantErr  error
	}{
		{
			name:     "Matriz não recebe nenhuma restrição",
			identity: domain.Identity{UserID: 1, Role: domain.RoleHeadquarters},
			want:     domain.ScopeFilter{},
		},
		{
			name:     "Regional é restrita à própria regional",
			identity: domain.Identity{UserID: 2, Role: domain.RoleBranch, BranchID: intPtr(4)},
			want:     domain.ScopeFilter{BranchID: intPtr(4)},
		},
		{
			name:     "Loja é restrita à própria loja, sem repetir a regional",
			identity: domain.Identity{UserID: 3, Role: domain.RoleStore, BranchID: intPtr(4), StoreID: intPtr(17)},
			want:     domain.ScopeFilter{StoreID: intPtr(17)},
		},
		{
			name:     "Regional sem regional vinculada é rejeitada, nunca alargada",
			identity: domain.Identity{UserID: 4, Role: domain.RoleBranch},
			wantErr:  ErrUnauthorizedScope,
		},
		{
			name:     "Loja sem loja vinculada é rejeitada",
			identity: domain.Identity{UserID: 5, Role: domain.RoleStore, BranchID: intPtr(2)},
			wantErr:  ErrUnauthorizedScope,
		},
		{
			name:     "Papel desconhecido é rejeitado",
			identity: domain.Identity{UserID: 6, Role: 99},
			wantErr:  ErrUnknownRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.identity)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeFilterUnrestricted(t *testing.T) {
	assert.True(t, domain.ScopeFilter{}.Unrestricted())
	assert.False(t, domain.ScopeFilter{BranchID: intPtr(1)}.Unrestricted())
	assert.False(t, domain.ScopeFilter{StoreID: intPtr(1)}.Unrestricted())
}
