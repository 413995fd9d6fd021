// internals/route/details/organization_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryController "gerejaku_backend/internals/features/organization/category/controller"
	membershipController "gerejaku_backend/internals/features/organization/membership/controller"
	unitController "gerejaku_backend/internals/features/organization/unit/controller"
)

func OrganizationRoutes(app *fiber.App, db *gorm.DB) {
	categories := categoryController.NewCategoryController(db)
	units := unitController.NewUnitController(db)
	memberships := membershipController.NewMembershipController(db)

	// ===================== CATEGORIES =====================
	app.Post("/organization-category/create", categories.Create)
	app.Get("/organization-categories/", categories.List)
	app.Put("/organization-categories/:category_id", categories.Update)
	app.Delete("/organization-categories/:category_id", categories.Delete)

	// ===================== UNITS =====================
	app.Post("/organization-unit/create", units.Create)
	app.Get("/organization-units/", units.List)

	// static and multi-segment paths must register before /:unit_id
	app.Get("/organization-units/hierarchy", units.Hierarchy)
	app.Get("/organization-units/hierarchy-up/:unit_id", units.HierarchyUp)
	app.Get("/organization-units/by-parent-unit/:parent_unit_id", units.ByParentUnit)
	app.Get("/organization-units/by-category/:category_id", units.ByCategory)
	app.Get("/organization-units/by-parent-category/:category_id", units.ByParentCategory)

	app.Get("/organization-units/:unit_id", units.Detail)
	app.Put("/organization-units/:unit_id/update", units.Update)
	app.Delete("/organization-units/:unit_id", units.Delete)
	app.Get("/organization-units/:unit_id/members", units.Members)

	// ===================== MEMBERSHIPS =====================
	app.Post("/user-organization-units/", memberships.Create)
	app.Get("/user-organization-units/by-user/:user_id", memberships.ByUser)
	app.Delete("/user-organization-units/:id", memberships.Delete)
}
