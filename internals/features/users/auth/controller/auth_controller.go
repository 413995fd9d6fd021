// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	authHelper "gerejaku_backend/internals/features/users/auth/helper"
	authService "gerejaku_backend/internals/features/users/auth/service"
	uDTO "gerejaku_backend/internals/features/users/user/dto"
	uModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

/* ===================== HANDLERS ===================== */

type registerRequest struct {
	Name     string  `json:"name" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8"`
	Level    *string `json:"level" validate:"omitempty,oneof=christian vip new_friend"`
	Role     *string `json:"role" validate:"omitempty,oneof=member ekk_leader group_leader district_leader branch_leader pastor minister"`
}

// POST /register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := h.DB.Model(&uModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "email already registered")
	}
	if err := h.DB.Model(&uModel.UserModel{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to check username")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "username already taken")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	level := uModel.LevelChristian
	if req.Level != nil {
		level = uModel.UserLevel(*req.Level)
	}
	role := uModel.RoleMember
	if req.Role != nil {
		role = uModel.UserRole(*req.Role)
	}

	m := &uModel.UserModel{
		Name:           req.Name,
		Email:          &req.Email,
		Username:       &req.Username,
		HashedPassword: &hash,
		Level:          level,
		Role:           role,
		IsActive:       true,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonDBError(c, err, "failed to register user")
	}

	return helper.JsonCreated(c, "user registered", uDTO.NewUserResponse(m))
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /token — accepts a username or an email in the username field.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ident := strings.TrimSpace(req.Username)
	var m uModel.UserModel
	err := h.DB.WithContext(c.UserContext()).
		Where("username = ? OR email = ?", ident, ident).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "incorrect username or password")
		}
		return helper.JsonDBError(c, err, "failed to fetch user")
	}

	if m.HashedPassword == nil ||
		authHelper.CheckPasswordHash(*m.HashedPassword, req.Password) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "incorrect username or password")
	}
	if !m.IsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "inactive user")
	}

	token, err := authService.CreateAccessToken(h.Cfg, &m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// GET /users/me (behind AuthJWT)
func (h *AuthController) Me(c *fiber.Ctx) error {
	v := c.Locals("user_id")
	id, ok := v.(int64)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var m uModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonDBError(c, err, "failed to fetch user")
	}
	if !m.IsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "inactive user")
	}

	return helper.JsonOK(c, "", uDTO.NewUserResponse(&m))
}
