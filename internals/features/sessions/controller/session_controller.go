// internals/features/sessions/controller/session_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"almanara_backend/internals/configs"
	"almanara_backend/internals/constants"
	helper "almanara_backend/internals/helpers"
)

// SessionController menyinkronkan bearer token backend ke cookie streaming
// berumur pendek (dan menghapusnya saat sign-out).
type SessionController struct{}

// =========================================================
// SYNC - POST /api/session
// Authorization: Bearer <token> → set cookie stream_token (204)
// =========================================================
func (ctrl *SessionController) Sync(c *fiber.Ctx) error {
	token, err := extractBearerToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing bearer token")
	}

	// Verifikasi hanya bila secret tersedia; mock dev boleh tanpa secret.
	if secret := configs.JWTSecret; secret != "" {
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}); err != nil {
			log.Println("[ERROR] session sync: token parse:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token expired")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     constants.StreamTokenCookie,
		Value:    token,
		Path:     constants.StreamCookiePath,
		MaxAge:   int(constants.StreamCookieTTL.Seconds()),
		Expires:  time.Now().Add(constants.StreamCookieTTL),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// =========================================================
// CLEAR - DELETE /api/session → hapus cookie (204)
// =========================================================
func (ctrl *SessionController) Clear(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     constants.StreamTokenCookie,
		Value:    "",
		Path:     constants.StreamCookiePath,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.SendStatus(fiber.StatusNoContent)
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// validateTokenExpiry mengecek exp dengan toleransi clock skew kecil.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	rawExp, ok := claims["exp"]
	if !ok {
		return nil // token tanpa exp dibiarkan (backend yang menentukan umur)
	}
	expFloat, ok := rawExp.(float64)
	if !ok {
		return fmt.Errorf("invalid exp claim")
	}
	expiry := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiry.Add(leeway)) {
		return fmt.Errorf("token expired at %s", expiry)
	}
	return nil
}
