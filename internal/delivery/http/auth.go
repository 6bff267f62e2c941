package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shiptrack/internal/configs"
)

const RoleAdmin = "admin"

// User is the authenticated caller as reported by the identity
// provider.
type User struct {
	ID    string
	Email string
	Role  string
}

// Authenticator validates a bearer token. The real identity provider is
// an external collaborator; StaticTokens is the config-backed stand-in.
type Authenticator interface {
	Authenticate(token string) (User, bool)
}

type StaticTokens map[string]User

func NewStaticTokens(entries []configs.AuthTokenEntry) StaticTokens {
	out := make(StaticTokens, len(entries))
	for _, e := range entries {
		out[e.Token] = User{ID: e.UserID, Email: e.Email, Role: e.Role}
	}
	return out
}

func (t StaticTokens) Authenticate(token string) (User, bool) {
	u, ok := t[token]
	return u, ok
}

// Decision is the typed outcome of the single authorization policy
// every guarded route consults.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionNotAuthenticated
	DecisionDenied
)

const userContextKey = "authUser"

func (h *Handler) decide(c *gin.Context, needAdmin bool) (User, Decision) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		return User{}, DecisionNotAuthenticated
	}

	user, ok := h.auth.Authenticate(token)
	if !ok {
		return User{}, DecisionNotAuthenticated
	}
	if needAdmin && user.Role != RoleAdmin {
		return user, DecisionDenied
	}
	return user, DecisionAllow
}

func (h *Handler) requireAuth(needAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, decision := h.decide(c, needAdmin)
		switch decision {
		case DecisionNotAuthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		case DecisionDenied:
			c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: "Forbidden"})
		default:
			c.Set(userContextKey, user)
			c.Next()
		}
	}
}

func currentUser(c *gin.Context) User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(User); ok {
			return u
		}
	}
	return User{}
}
