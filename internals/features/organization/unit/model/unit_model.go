// internals/features/organization/unit/model/unit_model.go
package model

import "time"

// OrganizationUnitModel is one node of the org tree. ParentUnitID nil
// means the unit is a root. The schema does not prevent a cyclic parent
// graph; traversals guard against it at read time.
type OrganizationUnitModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UnitName     string `gorm:"size:100;not null;column:unit_name" json:"unit_name"`
	CategoryID   int64  `gorm:"not null;column:category_id" json:"category_id"`
	ParentUnitID *int64 `gorm:"column:parent_unit_id" json:"parent_unit_id,omitempty"`
	LeaderID     *int64 `gorm:"column:leader_id" json:"leader_id,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (OrganizationUnitModel) TableName() string { return "organization_units" }
