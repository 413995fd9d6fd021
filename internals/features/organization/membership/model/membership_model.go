// internals/features/organization/membership/model/membership_model.go
package model

import "time"

// UserOrganizationUnitModel links a user to a unit. A user may belong
// to any number of units; no uniqueness is enforced on (user_id,
// unit_id), so duplicate links are possible and readers de-duplicate.
type UserOrganizationUnitModel struct {
	ID     int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID int64 `gorm:"not null;index;column:user_id" json:"user_id"`
	UnitID int64 `gorm:"not null;index;column:unit_id" json:"unit_id"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (UserOrganizationUnitModel) TableName() string { return "user_organization_units" }
