// internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	authController "gerejaku_backend/internals/features/users/auth/controller"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
	rateLimiter "gerejaku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	ctrl := authController.NewAuthController(db, cfg)

	app.Post("/register", rateLimiter.LoginRateLimiter(), ctrl.Register)
	app.Post("/token", rateLimiter.LoginRateLimiter(), ctrl.Login)

	app.Get("/users/me",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              cfg.JWTSecret,
			AllowCookieFallback: true,
		}),
		ctrl.Me,
	)
}
