package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie identifies an anonymous shopper across requests. Carts are
// keyed by it until the user signs in.
const SessionCookie = "nextel_session"

// SessionMiddleware guarantees every request carries a shopper identity: the
// JWT user when a valid token is present, otherwise a session cookie minted
// on first contact. It never rejects.
func SessionMiddleware(ctx *fiber.Ctx) error {
	if userId := bearerUserId(ctx); userId != "" {
		ctx.Locals("user_id", userId)
	}

	sessionId := ctx.Cookies(SessionCookie)
	if sessionId == "" {
		sessionId = uuid.NewString()
		ctx.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    sessionId,
			HTTPOnly: true,
			SameSite: "Lax",
			MaxAge:   60 * 60 * 24 * 30,
		})
	}
	ctx.Locals("session_id", sessionId)

	return ctx.Next()
}

// ShopperId resolves the cart owner for the current request: the signed-in
// user if there is one, the anonymous session otherwise.
func ShopperId(ctx *fiber.Ctx) string {
	if userId, ok := ctx.Locals("user_id").(string); ok && userId != "" {
		return userId
	}
	if sessionId, ok := ctx.Locals("session_id").(string); ok {
		return sessionId
	}
	return ""
}

// bearerUserId parses an optional Authorization header. Invalid tokens are
// ignored rather than rejected; protected routes use JwtMiddleware instead.
func bearerUserId(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	userId, _ := claims["user_id"].(string)
	return userId
}
