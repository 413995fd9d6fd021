// internals/features/organization/unit/controller/unit_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catModel "gerejaku_backend/internals/features/organization/category/model"
	unitDTO "gerejaku_backend/internals/features/organization/unit/dto"
	unitModel "gerejaku_backend/internals/features/organization/unit/model"
	unitService "gerejaku_backend/internals/features/organization/unit/service"
	uDTO "gerejaku_backend/internals/features/users/user/dto"
	uModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

/* ===================== CRUD ===================== */

// POST /organization-unit/create
func (h *UnitController) Create(c *fiber.Ctx) error {
	var req unitDTO.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// a non-null parent must reference an existing unit
	if req.ParentUnitID != nil {
		var count int64
		if err := h.DB.Model(&unitModel.OrganizationUnitModel{}).
			Where("id = ?", *req.ParentUnitID).
			Count(&count).Error; err != nil {
			return helper.JsonDBError(c, err, "failed to check parent unit")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "parent unit does not exist")
		}
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to create organization unit")
	}
	return helper.JsonCreated(c, "organization unit created", unitDTO.NewUnitResponse(m))
}

// GET /organization-units/
func (h *UnitController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 100, 500)

	var total int64
	if err := h.DB.Model(&unitModel.OrganizationUnitModel{}).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to count units")
	}

	var rows []unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list units")
	}

	return helper.JsonList(c, "", unitDTO.NewUnitResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /organization-units/:unit_id
func (h *UnitController) Detail(c *fiber.Ctx) error {
	id, err := parseID(c.Params("unit_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit id")
	}
	m, ferr := h.findByID(c, id)
	if ferr != nil {
		return ferr
	}
	return helper.JsonOK(c, "", unitDTO.NewUnitResponse(m))
}

// PUT /organization-units/:unit_id/update
func (h *UnitController) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("unit_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit id")
	}

	var req unitDTO.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, ferr := h.findByID(c, id)
	if ferr != nil {
		return ferr
	}

	if req.ParentUnitID != nil {
		if *req.ParentUnitID == id {
			return helper.JsonError(c, fiber.StatusBadRequest, "a unit cannot be its own parent")
		}
		var count int64
		if err := h.DB.Model(&unitModel.OrganizationUnitModel{}).
			Where("id = ?", *req.ParentUnitID).
			Count(&count).Error; err != nil {
			return helper.JsonDBError(c, err, "failed to check parent unit")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "parent unit does not exist")
		}
	}

	req.ApplyToModel(m)
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to update organization unit")
	}
	return helper.JsonUpdated(c, "organization unit updated", unitDTO.NewUnitResponse(m))
}

// DELETE /organization-units/:unit_id — membership links go with it.
func (h *UnitController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("unit_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit id")
	}
	m, ferr := h.findByID(c, id)
	if ferr != nil {
		return ferr
	}

	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_organization_units WHERE unit_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if txErr != nil {
		return helper.JsonDBError(c, txErr, "failed to delete organization unit")
	}
	return helper.JsonDeleted(c, "organization unit deleted", fiber.Map{"id": id})
}

/* ===================== HIERARCHY ===================== */

// GET /organization-units/hierarchy — full nested tree from the roots.
// One query for all units, assembled in memory.
func (h *UnitController) Hierarchy(c *fiber.Ctx) error {
	var units []unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("id ASC").
		Find(&units).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to load organization units")
	}
	return helper.JsonOK(c, "", unitDTO.BuildTree(units))
}

// GET /organization-units/hierarchy-up/:unit_id — chain leaf to root.
func (h *UnitController) HierarchyUp(c *fiber.Ctx) error {
	id, err := parseID(c.Params("unit_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit id")
	}

	loaded := map[int64]*unitModel.OrganizationUnitModel{}
	chain, err := unitService.AncestorChain(id, func(unitID int64) (*int64, bool, error) {
		var m unitModel.OrganizationUnitModel
		if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", unitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, nil
			}
			return nil, false, err
		}
		loaded[unitID] = &m
		return m.ParentUnitID, true, nil
	})
	if err != nil {
		if errors.Is(err, unitService.ErrHierarchyCycle) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonDBError(c, err, "failed to walk hierarchy")
	}

	out := make([]*unitDTO.UnitResponse, 0, len(chain))
	for _, uid := range chain {
		out = append(out, unitDTO.NewUnitResponse(loaded[uid]))
	}
	return helper.JsonOK(c, "", out)
}

// GET /organization-units/:unit_id/members — every member of the unit
// and its whole subtree, de-duplicated by user id. An empty member set
// is a valid result, not an error.
func (h *UnitController) Members(c *fiber.Ctx) error {
	id, err := parseID(c.Params("unit_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit id")
	}
	if _, ferr := h.findByID(c, id); ferr != nil {
		return ferr
	}

	unitIDs, err := h.subtreeIDs(c, id)
	if err != nil {
		if errors.Is(err, unitService.ErrHierarchyCycle) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonDBError(c, err, "failed to resolve subtree")
	}

	members, err := h.membersOfUnits(c, unitIDs)
	if err != nil {
		return helper.JsonDBError(c, err, "failed to resolve members")
	}
	return helper.JsonOK(c, "", uDTO.NewUserResponses(members))
}

/* ===================== LOOKUPS ===================== */

// GET /organization-units/by-parent-unit/:parent_unit_id
func (h *UnitController) ByParentUnit(c *fiber.Ctx) error {
	id, err := parseID(c.Params("parent_unit_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit id")
	}
	p := helper.ResolvePaging(c, 100, 500)

	var rows []unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("parent_unit_id = ?", id).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list units")
	}
	return helper.JsonOK(c, "", unitDTO.NewUnitResponses(rows))
}

// GET /organization-units/by-category/:category_id
func (h *UnitController) ByCategory(c *fiber.Ctx) error {
	id, err := parseID(c.Params("category_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid category id")
	}
	p := helper.ResolvePaging(c, 100, 500)

	var rows []unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("category_id = ?", id).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list units")
	}
	return helper.JsonOK(c, "", unitDTO.NewUnitResponses(rows))
}

// GET /organization-units/by-parent-category/:category_id — units of
// the tier directly above the given category. The parent tier is
// resolved through the category_tier relation, not id arithmetic.
func (h *UnitController) ByParentCategory(c *fiber.Ctx) error {
	id, err := parseID(c.Params("category_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid category id")
	}

	var cat catModel.OrganizationCategoryModel
	if err := h.DB.WithContext(c.UserContext()).First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "organization category not found")
		}
		return helper.JsonDBError(c, err, "failed to fetch category")
	}

	var parent catModel.OrganizationCategoryModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&parent, "category_tier = ?", cat.CategoryTier-1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no parent tier above this category")
		}
		return helper.JsonDBError(c, err, "failed to fetch parent category")
	}

	p := helper.ResolvePaging(c, 100, 500)
	var rows []unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("category_id = ?", parent.ID).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list units")
	}
	return helper.JsonOK(c, "", unitDTO.NewUnitResponses(rows))
}

/* ===================== HELPERS ===================== */

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func (h *UnitController) findByID(c *fiber.Ctx, id int64) (*unitModel.OrganizationUnitModel, error) {
	var m unitModel.OrganizationUnitModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "organization unit not found")
		}
		return nil, helper.JsonDBError(c, err, "failed to fetch organization unit")
	}
	return &m, nil
}

// subtreeIDs runs the worklist traversal with a per-level child query.
func (h *UnitController) subtreeIDs(c *fiber.Ctx, rootID int64) ([]int64, error) {
	return unitService.SubtreeIDs(rootID, func(parentID int64) ([]int64, error) {
		var ids []int64
		err := h.DB.WithContext(c.UserContext()).
			Model(&unitModel.OrganizationUnitModel{}).
			Where("parent_unit_id = ?", parentID).
			Order("id ASC").
			Pluck("id", &ids).Error
		return ids, err
	})
}

// membersOfUnits joins the link table to users, de-duplicated by id.
func (h *UnitController) membersOfUnits(c *fiber.Ctx, unitIDs []int64) ([]uModel.UserModel, error) {
	var members []uModel.UserModel
	err := h.DB.WithContext(c.UserContext()).
		Model(&uModel.UserModel{}).
		Distinct("users.*").
		Joins("JOIN user_organization_units uou ON uou.user_id = users.id").
		Where("uou.unit_id IN ?", unitIDs).
		Order("users.id ASC").
		Find(&members).Error
	return members, err
}
