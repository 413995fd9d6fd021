// internals/features/organization/category/controller/category_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catDTO "gerejaku_backend/internals/features/organization/category/dto"
	catModel "gerejaku_backend/internals/features/organization/category/model"
	helper "gerejaku_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /organization-category/create
func (h *CategoryController) Create(c *fiber.Ctx) error {
	var req catDTO.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to create category")
	}
	return helper.JsonCreated(c, "category created", catDTO.NewCategoryResponse(m))
}

// GET /organization-categories/?search=
func (h *CategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 100, 500)

	dbq := h.DB.Model(&catModel.OrganizationCategoryModel{})
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		dbq = dbq.Where("category_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to count categories")
	}

	var rows []catModel.OrganizationCategoryModel
	if err := dbq.WithContext(c.UserContext()).
		Order("category_tier ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list categories")
	}

	return helper.JsonList(c, "", catDTO.NewCategoryResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /organization-categories/:category_id
func (h *CategoryController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("category_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid category id")
	}

	var req catDTO.UpdateCategoryRequest
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

	req.ApplyToModel(m)
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to update category")
	}
	return helper.JsonUpdated(c, "category updated", catDTO.NewCategoryResponse(m))
}

// DELETE /organization-categories/:category_id
func (h *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("category_id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid category id")
	}
	m, ferr := h.findByID(c, id)
	if ferr != nil {
		return ferr
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to delete category")
	}
	return helper.JsonDeleted(c, "category deleted", fiber.Map{"id": id})
}

/* ===================== HELPERS ===================== */

func (h *CategoryController) findByID(c *fiber.Ctx, id int64) (*catModel.OrganizationCategoryModel, error) {
	var m catModel.OrganizationCategoryModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "organization category not found")
		}
		return nil, helper.JsonDBError(c, err, "failed to fetch category")
	}
	return &m, nil
}
