package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/pkg/jwt"
)

// Locals key para el UserID en Fiber.
const LocalUserID = "user_id"

// AuthMiddleware valida el JWT y deja el UserID en c.Locals. Acepta el token
// por cookie de sesión (el frontend web) o por header Authorization Bearer
// (clientes de API). cookieName debe ser el mismo que usa el login al emitir
// la cookie (config JWT_COOKIE_NAME).
func AuthMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookieName)

		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
			}
			tokenString = strings.TrimSpace(parts[1])
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}

		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
// Devuelve 0 si no hay sesión.
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}
