package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mall-office/internal/application/dto"
	"github.com/tu-usuario/mall-office/internal/domain/access"
)

// RequireOperation devuelve un middleware Fiber que aplica el gate de
// operación de la política de acceso. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalUserID y LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → sin sesión en el contexto.
//   - 403 Forbidden    → el rol de la sesión no puede ejecutar la operación.
func RequireOperation(entity access.Entity, op access.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if !sess.IsSignedIn() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		if !access.CanOperate(sess, entity, op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la sesión no tiene permiso para esta operación",
			})
		}
		return c.Next()
	}
}
