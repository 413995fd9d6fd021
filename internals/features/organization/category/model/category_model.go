// internals/features/organization/category/model/category_model.go
package model

import "time"

// OrganizationCategoryModel is one tier of the hierarchy (branch,
// district, group, ...). CategoryTier is the explicit depth: tier 1 is
// the topmost tier and the parent of tier n is the category with tier
// n-1. The tier relation replaces any arithmetic on category ids.
type OrganizationCategoryModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CategoryName string `gorm:"size:100;not null;column:category_name" json:"category_name"`
	CategoryTier int    `gorm:"not null;uniqueIndex;column:category_tier" json:"category_tier"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (OrganizationCategoryModel) TableName() string { return "organization_categories" }
