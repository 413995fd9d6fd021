// internals/features/organization/category/dto/category_dto.go
package dto

import (
	"time"

	catModel "gerejaku_backend/internals/features/organization/category/model"
)

/* ===================== REQUESTS ===================== */

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,min=2,max=100"`
	CategoryTier int    `json:"category_tier" validate:"required,min=1"`
}

func (r *CreateCategoryRequest) ToModel() *catModel.OrganizationCategoryModel {
	return &catModel.OrganizationCategoryModel{
		CategoryName: r.CategoryName,
		CategoryTier: r.CategoryTier,
	}
}

type UpdateCategoryRequest struct {
	CategoryName *string `json:"category_name" validate:"omitempty,min=2,max=100"`
	CategoryTier *int    `json:"category_tier" validate:"omitempty,min=1"`
}

func (r *UpdateCategoryRequest) ApplyToModel(m *catModel.OrganizationCategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = *r.CategoryName
	}
	if r.CategoryTier != nil {
		m.CategoryTier = *r.CategoryTier
	}
	now := time.Now()
	m.UpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type CategoryResponse struct {
	ID           int64      `json:"id"`
	CategoryName string     `json:"category_name"`
	CategoryTier int        `json:"category_tier"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func NewCategoryResponse(m *catModel.OrganizationCategoryModel) *CategoryResponse {
	if m == nil {
		return nil
	}
	return &CategoryResponse{
		ID:           m.ID,
		CategoryName: m.CategoryName,
		CategoryTier: m.CategoryTier,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func NewCategoryResponses(models []catModel.OrganizationCategoryModel) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(models))
	for i := range models {
		out = append(out, NewCategoryResponse(&models[i]))
	}
	return out
}
