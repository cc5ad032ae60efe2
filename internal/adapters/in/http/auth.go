package http

import (
	"fmt"
	"strings"
	"time"

	"freight/internal/core/application/roles"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Authenticate resolves the bearer token into a roles.Principal. A request
// without an Authorization header stays anonymous; the role registry turns
// that into Unauthorized for every protected operation. A malformed,
// expired or wrongly signed token fails right here.
//
// Tokens are HS256 with the claims:
//
//	sub   principal id (uuid)
//	role  CARRIER or SHIPPER
//	exp   expiry, required
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return errs.NewUnauthorizedError("authorization header must carry a bearer token")
			}

			p, err := parseToken(secret, raw)
			if err != nil {
				return err
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

func parseToken(secret []byte, raw string) (roles.Principal, error) {
	token, err := jwt.Parse(raw, func(_ *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return roles.Principal{}, errs.NewUnauthorizedError(fmt.Sprintf("invalid bearer token: %v", err))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return roles.Principal{}, errs.NewUnauthorizedError("invalid bearer token claims")
	}

	sub, _ := claims["sub"].(string)
	id, err := kernel.UUIDFromString(sub)
	if err != nil {
		return roles.Principal{}, errs.NewUnauthorizedError("token subject is not a principal id")
	}
	roleName, _ := claims["role"].(string)
	role, err := roles.ParseRole(roleName)
	if err != nil {
		return roles.Principal{}, errs.NewUnauthorizedError("token role is not CARRIER or SHIPPER")
	}
	return roles.NewPrincipal(id, role), nil
}

// IssueToken signs a token Authenticate accepts.
func IssueToken(secret []byte, p roles.Principal, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  p.ID.String(),
		"role": p.Role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

func principal(c echo.Context) roles.Principal {
	p, _ := c.Get(principalKey).(roles.Principal)
	return p
}
