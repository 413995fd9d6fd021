// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	userModel "gerejaku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type CreateUserRequest struct {
	Name         string  `json:"name" validate:"required,min=3,max=50"`
	Birthday     *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Email        *string `json:"email" validate:"omitempty,email"`
	MobileNumber *string `json:"mobile_number" validate:"omitempty,numeric,len=10,startswith=09"`
	Level        string  `json:"level" validate:"required,oneof=christian vip new_friend"`
	Role         string  `json:"role" validate:"required,oneof=member ekk_leader group_leader district_leader branch_leader pastor minister"`
}

func (r *CreateUserRequest) ToModel() *userModel.UserModel {
	m := &userModel.UserModel{
		Name:         r.Name,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		Level:        userModel.UserLevel(r.Level),
		Role:         userModel.UserRole(r.Role),
		IsActive:     true,
	}
	if r.Birthday != nil {
		if t, err := time.Parse("2006-01-02", *r.Birthday); err == nil {
			m.Birthday = &t
		}
	}
	return m
}

type UpdateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=3,max=50"`
	Birthday     *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Email        *string `json:"email" validate:"omitempty,email"`
	MobileNumber *string `json:"mobile_number" validate:"omitempty,numeric,len=10,startswith=09"`
	Level        *string `json:"level" validate:"omitempty,oneof=christian vip new_friend"`
	Role         *string `json:"role" validate:"omitempty,oneof=member ekk_leader group_leader district_leader branch_leader pastor minister"`
	IsActive     *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateUserRequest) ApplyToModel(m *userModel.UserModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Birthday != nil {
		if t, err := time.Parse("2006-01-02", *r.Birthday); err == nil {
			m.Birthday = &t
		}
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.MobileNumber != nil {
		m.MobileNumber = r.MobileNumber
	}
	if r.Level != nil {
		m.Level = userModel.UserLevel(*r.Level)
	}
	if r.Role != nil {
		m.Role = userModel.UserRole(*r.Role)
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}

	now := time.Now()
	m.UpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Birthday     *string             `json:"birthday,omitempty"`
	Email        *string             `json:"email,omitempty"`
	MobileNumber *string             `json:"mobile_number,omitempty"`
	Level        userModel.UserLevel `json:"level"`
	Role         userModel.UserRole  `json:"role"`
	Username     *string             `json:"username,omitempty"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
}

func NewUserResponse(m *userModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	resp := &UserResponse{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		MobileNumber: m.MobileNumber,
		Level:        m.Level,
		Role:         m.Role,
		Username:     m.Username,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Birthday != nil {
		s := m.Birthday.Format("2006-01-02")
		resp.Birthday = &s
	}
	return resp
}

func NewUserResponses(models []userModel.UserModel) []*UserResponse {
	out := make([]*UserResponse, 0, len(models))
	for i := range models {
		out = append(out, NewUserResponse(&models[i]))
	}
	return out
}
