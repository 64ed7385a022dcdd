package middleware

import (
	"strings"

	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth is middleware that validates JWT token and sets user info in context
func RequireAuth(userRepo repository.UserRepository, tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Missing authorization token")
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
		}

		return authenticate(c, userRepo, tokens, parts[1])
	}
}

// RequireQueryToken authenticates with a token passed as a query parameter,
// for websocket upgrades where browsers cannot set headers.
func RequireQueryToken(userRepo repository.UserRepository, tokens *jwt.Manager, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query(param)
		if token == "" {
			return unauthorized(c, "Missing authorization token")
		}
		return authenticate(c, userRepo, tokens, token)
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

// authenticate checks the token against the stored user (active, current token
// version) and sets user info in context for downstream handlers.
func authenticate(c *fiber.Ctx, userRepo repository.UserRepository, tokens *jwt.Manager, tokenString string) error {
	claims, err := tokens.ValidateToken(tokenString)
	if err != nil {
		return unauthorized(c, "Invalid or expired token")
	}

	// Check strict session against DB
	user, err := userRepo.FindByID(claims.UserID)
	if err != nil {
		return unauthorized(c, "User not found")
	}

	if !user.IsActive {
		return unauthorized(c, "User account is inactive")
	}

	if user.TokenVersion != claims.TokenVersion {
		return unauthorized(c, "Session expired (logged in on another device)")
	}

	c.Locals("user_id", claims.UserID.String())
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.Name)
	// Privileges are read from the database, not the token
	c.Locals("user_privileges", user.GetPrivilegeCodes())

	return c.Next()
}

// RequirePrivilege checks if the authenticated user has the required privilege
func RequirePrivilege(requiredPrivilege string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get privileges from context (set by RequireAuth)
		privileges, ok := c.Locals("user_privileges").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}

		// Check if user has the required privilege
		for _, p := range privileges {
			if p == requiredPrivilege {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires '" + requiredPrivilege + "' privilege",
		})
	}
}

// RequireAnyPrivilege checks if the user has at least one of the specified privileges
func RequireAnyPrivilege(requiredPrivileges ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		privileges, ok := c.Locals("user_privileges").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}

		for _, userPriv := range privileges {
			for _, reqPriv := range requiredPrivileges {
				if userPriv == reqPriv {
					return c.Next()
				}
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(requiredPrivileges, ", ") + " privileges",
		})
	}
}
