package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse is the standard success envelope every controller returns.
func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": message,
		"data":    data,
	}
}
