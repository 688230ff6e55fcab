package middleware

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kehilla/internal/config"
	"kehilla/internal/models"
	"kehilla/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token claim constants shared by issuance and verification.
const (
	TokenIssuer   = "kehilla-api"
	TokenAudience = "kehilla-clients"
	TokenTTL      = 24 * time.Hour
)

var cfg *config.Config

// InitMiddleware wires the config into the auth middleware.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// IssueToken mints a signed HS256 access token for the given user.
func IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    TokenIssuer,
		Audience:  jwt.ClaimStrings{TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// AuthRequired enforces authentication for protected routes. A missing bearer
// token is 401; a present but unverifiable one is 403.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		observability.AuthFailures.WithLabelValues("token").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Access token required"))
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		observability.AuthFailures.WithLabelValues("token").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Access token required"))
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		observability.AuthFailures.WithLabelValues("token").Inc()
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		observability.AuthFailures.WithLabelValues("token").Inc()
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Invalid token"))
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		observability.AuthFailures.WithLabelValues("token").Inc()
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Invalid token"))
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		observability.AuthFailures.WithLabelValues("token").Inc()
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Invalid token"))
	}

	c.Locals("userID", uint(userID))
	// Make the identity visible to the context-aware logger in deeper layers.
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, uint(userID)))
	return c.Next()
}
