package middleware

import (
	"crypto/sha256"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin   = "admin"
	RoleService = "service"
	RoleReader  = "reader"

	ContextKeyPrincipal = "auth.principal"
	ContextKeyRole      = "auth.role"

	AnonymousPrincipal = "anonymous"
)

type AuthMiddleware interface {
	Authenticate() gin.HandlerFunc
	RequireRole(role string) gin.HandlerFunc
}

type AuthConfig struct {
	Enabled            bool
	AllowAnonymousRead bool
	// APIKeys maps a key name to the bcrypt hash of the key.
	APIKeys    map[string]string
	AdminNames []string
	// TokenSecret enables HS256 service tokens next to API keys. Empty disables them.
	TokenSecret string
}

type principal struct {
	name string
	role string
}

type authMiddleware struct {
	cfg AuthConfig
	// verified caches sha256(key) of keys that already passed bcrypt
	verified sync.Map
}

func extractAPIKey(header string) string {
	header = strings.TrimSpace(header)
	for _, prefix := range []string{"Bearer ", "ApiKey "} {
		if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
			return strings.TrimSpace(header[len(prefix):])
		}
	}
	return header
}

func (a *authMiddleware) lookup(key string) (principal, bool) {
	digest := sha256.Sum256([]byte(key))
	if p, ok := a.verified.Load(digest); ok {
		return p.(principal), true
	}
	for name, hash := range a.cfg.APIKeys {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil {
			role := RoleService
			if slices.Contains(a.cfg.AdminNames, name) {
				role = RoleAdmin
			}
			p := principal{name: name, role: role}
			a.verified.Store(digest, p)
			return p, true
		}
	}
	return principal{}, false
}

func setPrincipal(c *gin.Context, p principal) {
	c.Set(ContextKeyPrincipal, p.name)
	c.Set(ContextKeyRole, p.role)
	c.Request.Header.Set("X-User-Id", p.name)
}

func (a *authMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.cfg.Enabled {
			setPrincipal(c, principal{name: AnonymousPrincipal, role: RoleAdmin})
			c.Next()
			return
		}
		key := extractAPIKey(c.GetHeader("Authorization"))
		if key == "" {
			if a.cfg.AllowAnonymousRead && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
				setPrincipal(c, principal{name: AnonymousPrincipal, role: RoleReader})
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Missing API key",
			})
			return
		}
		if a.cfg.TokenSecret != "" && looksLikeToken(key) {
			p, err := verifyServiceToken(a.cfg.TokenSecret, key)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "Invalid service token",
				})
				return
			}
			setPrincipal(c, p)
			c.Next()
			return
		}
		p, ok := a.lookup(key)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid API key",
			})
			return
		}
		setPrincipal(c, p)
		c.Next()
	}
}

func (a *authMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(ContextKeyRole)
		if current == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authentication required",
			})
			return
		}
		if current != role && current != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Permission denied",
			})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(cfg AuthConfig) AuthMiddleware {
	return &authMiddleware{
		cfg: cfg,
	}
}
