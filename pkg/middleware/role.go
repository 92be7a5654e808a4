package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base no claim "role"
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.Role) {
				logrus.Warningf("Acesso negado para sub=%s, role=%s", userClaims.Subject, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ServiceRoleOnly permite acesso apenas a tokens de serviço (jobs e operações internas)
func ServiceRoleOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleServiceRole})
}

// AuthenticatedUsers permite usuários logados e tokens de serviço
func AuthenticatedUsers() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAuthenticated, domain.RoleServiceRole})
}
