// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uDTO "gerejaku_backend/internals/features/users/user/dto"
	uModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /user/create
func (h *UserController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// email must stay unique across all users
	if req.Email != nil {
		var count int64
		if err := h.DB.Model(&uModel.UserModel{}).Where("email = ?", *req.Email).Count(&count).Error; err != nil {
			return helper.JsonDBError(c, err, "failed to check email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "email already registered")
		}
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to create user")
	}

	return helper.JsonCreated(c, "user created", uDTO.NewUserResponse(m))
}

// GET /users/
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 100, 500)

	var total int64
	if err := h.DB.Model(&uModel.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to count users")
	}

	var rows []uModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to list users")
	}

	return helper.JsonList(c, "", uDTO.NewUserResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /user/:user_id
func (h *UserController) Detail(c *fiber.Ctx) error {
	id, err := parseID(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	m, ferr := h.findByID(c, id)
	if ferr != nil {
		return ferr
	}
	return helper.JsonOK(c, "", uDTO.NewUserResponse(m))
}

// PUT /user/:user_id
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var req uDTO.UpdateUserRequest
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

	// a changed email must not collide with another user
	if req.Email != nil && (m.Email == nil || *req.Email != *m.Email) {
		var count int64
		if err := h.DB.Model(&uModel.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, id).
			Count(&count).Error; err != nil {
			return helper.JsonDBError(c, err, "failed to check email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "email already registered")
		}
	}

	req.ApplyToModel(m)
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to update user")
	}

	return helper.JsonUpdated(c, "user updated", uDTO.NewUserResponse(m))
}

// DELETE /user/:user_id — also removes the user's unit memberships.
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	m, ferr := h.findByID(c, id)
	if ferr != nil {
		return ferr
	}

	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_organization_units WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if txErr != nil {
		return helper.JsonDBError(c, txErr, "failed to delete user")
	}

	return helper.JsonDeleted(c, "user deleted", fiber.Map{"id": id})
}

/* ===================== HELPERS ===================== */

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func (h *UserController) findByID(c *fiber.Ctx, id int64) (*uModel.UserModel, error) {
	var m uModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return nil, helper.JsonDBError(c, err, "failed to fetch user")
	}
	return &m, nil
}
