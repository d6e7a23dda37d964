package internal

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"

	"github.com/DrGermanius/backoffice/internal/model"
)

const authLocalsKey = "auth"

// Claims are issued by the identity provider. Sub is the user id.
type Claims struct {
	OrganizationID string `json:"org_id"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// RequireOrganization rejects callers without a user or an organization.
func RequireOrganization(auth model.AuthContext) error {
	if auth.UserID == "" {
		return ErrUnauthenticated
	}
	if auth.OrganizationID == "" {
		return ErrNoOrganization
	}
	return nil
}

func RequireAdmin(auth model.AuthContext) error {
	if err := RequireOrganization(auth); err != nil {
		return err
	}
	if !auth.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

// ParseToken verifies an HS256 bearer token and turns its claims into an AuthContext.
func ParseToken(tokenString string, secret []byte) (model.AuthContext, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return model.AuthContext{}, errors.Wrap(ErrUnauthenticated, err.Error())
	}
	if claims.Subject == "" {
		return model.AuthContext{}, errors.Wrap(ErrUnauthenticated, "token has no subject")
	}

	return model.AuthContext{
		UserID:         claims.Subject,
		OrganizationID: claims.OrganizationID,
		Role:           claims.Role,
	}, nil
}

// NewToken signs claims the same way the identity provider does. Used by tests and the admin CLI.
func NewToken(auth model.AuthContext, secret []byte) (string, error) {
	claims := Claims{
		OrganizationID:   auth.OrganizationID,
		Role:             auth.Role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: auth.UserID},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Authenticate stores the caller's AuthContext in the request locals.
func Authenticate(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": ErrUnauthenticated.Error()})
		}

		auth, err := ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": ErrUnauthenticated.Error()})
		}

		c.Locals(authLocalsKey, auth)
		return c.Next()
	}
}

func authFromCtx(c *fiber.Ctx) model.AuthContext {
	auth, _ := c.Locals(authLocalsKey).(model.AuthContext)
	return auth
}
