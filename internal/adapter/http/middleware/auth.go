package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"rxquote/internal/config"
	"rxquote/internal/domain/entities"
	"rxquote/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")

	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
)

// providerClaims is the subset of the auth provider's access token we rely on.
type providerClaims struct {
	jwt.RegisteredClaims
	AppRole      string         `json:"app_role"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (c providerClaims) role() entities.Role {
	if r := strings.TrimSpace(c.AppRole); r != "" {
		return entities.Role(strings.ToLower(r))
	}
	if r, ok := c.UserMetadata["role"].(string); ok {
		return entities.Role(strings.ToLower(strings.TrimSpace(r)))
	}
	return ""
}

// TokenVerifier validates HS256 access tokens issued by the hosted auth provider.
type TokenVerifier struct {
	secret []byte
	issuer string
}

func NewTokenVerifier(cfg config.AuthConfig) *TokenVerifier {
	return &TokenVerifier{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer}
}

func (v *TokenVerifier) Verify(tokenString string) (entities.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &providerClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Identity{}, ErrTokenExpired
		}
		return entities.Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*providerClaims)
	if !ok || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return entities.Identity{}, ErrTokenInvalid
	}
	return entities.Identity{UserID: claims.Subject, Role: claims.role()}, nil
}

// Auth rejects requests without a valid bearer token and stores the caller identity.
func Auth(v *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var id entities.Identity
			id, err = v.Verify(token)
			if err == nil {
				SetIdentity(c, id)
				c.Next()
				return
			}
		}
		_ = c.Error(err)
		c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func SetIdentity(c *gin.Context, id entities.Identity) {
	c.Set(identityKey, id)
}

func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	id, ok := v.(entities.Identity)
	return id, ok
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}
