// internals/features/organization/membership/controller/membership_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	membershipDTO "gerejaku_backend/internals/features/organization/membership/dto"
	membershipModel "gerejaku_backend/internals/features/organization/membership/model"
	unitDTO "gerejaku_backend/internals/features/organization/unit/dto"
	unitModel "gerejaku_backend/internals/features/organization/unit/model"
	uModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /user-organization-units/ — both sides must exist.
func (h *MembershipController) Create(c *fiber.Ctx) error {
	var req membershipDTO.CreateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := h.DB.Model(&uModel.UserModel{}).Where("id = ?", req.UserID).Count(&count).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to check user")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}
	if err := h.DB.Model(&unitModel.OrganizationUnitModel{}).Where("id = ?", req.UnitID).Count(&count).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to check unit")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "organization unit not found")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to create membership")
	}
	return helper.JsonCreated(c, "membership created", membershipDTO.NewMembershipResponse(m))
}

// GET /user-organization-units/by-user/:user_id — raw link rows.
func (h *MembershipController) ByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var rows []membershipModel.UserOrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list memberships")
	}
	return helper.JsonOK(c, "", membershipDTO.NewMembershipResponses(rows))
}

// GET /users/:user_id/organization-units — the units a user belongs to,
// resolved through the link table.
func (h *MembershipController) UnitsOfUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var count int64
	if err := h.DB.Model(&uModel.UserModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to check user")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "user not found")
	}

	var units []unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).
		Model(&unitModel.OrganizationUnitModel{}).
		Distinct("organization_units.*").
		Joins("JOIN user_organization_units uou ON uou.unit_id = organization_units.id").
		Where("uou.user_id = ?", userID).
		Order("organization_units.id ASC").
		Find(&units).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list units")
	}
	return helper.JsonOK(c, "", unitDTO.NewUnitResponses(units))
}

// DELETE /user-organization-units/:id
func (h *MembershipController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid membership id")
	}

	var m membershipModel.UserOrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "membership not found")
		}
		return helper.JsonDBError(c, err, "failed to fetch membership")
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to delete membership")
	}
	return helper.JsonDeleted(c, "membership deleted", fiber.Map{"id": id})
}
