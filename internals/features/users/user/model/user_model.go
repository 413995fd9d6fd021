// internals/features/users/user/model/user_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"
)

/*
Membership level (matches the ENUM in the DB):
- "christian"
- "vip"
- "new_friend"
*/
type UserLevel string

const (
	LevelChristian UserLevel = "christian"
	LevelVIP       UserLevel = "vip"
	LevelNewFriend UserLevel = "new_friend"
)

// Keep levels lower-case on scan/save, safe if the source is mixed-case.
func (l *UserLevel) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*l = UserLevel(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*l = UserLevel(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*l = ""
	default:
		*l = UserLevel(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (l UserLevel) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(l))), nil
}

/*
Role within the congregation:
- "member", "ekk_leader", "group_leader", "district_leader",
  "branch_leader", "pastor", "minister"
*/
type UserRole string

const (
	RoleMember         UserRole = "member"
	RoleEKKLeader      UserRole = "ekk_leader"
	RoleGroupLeader    UserRole = "group_leader"
	RoleDistrictLeader UserRole = "district_leader"
	RoleBranchLeader   UserRole = "branch_leader"
	RolePastor         UserRole = "pastor"
	RoleMinister       UserRole = "minister"
)

func (r *UserRole) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*r = UserRole(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*r = UserRole(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*r = ""
	default:
		*r = UserRole(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}
func (r UserRole) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(r))), nil
}

type UserModel struct {
	// PK
	ID int64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`

	// Identity & profile
	Name         string     `gorm:"size:50;not null;column:name" json:"name"`
	Birthday     *time.Time `gorm:"type:date;column:birthday" json:"birthday,omitempty"`
	Email        *string    `gorm:"size:255;uniqueIndex;column:email" json:"email,omitempty"`
	MobileNumber *string    `gorm:"size:20;column:mobile_number" json:"mobile_number,omitempty"`
	Level        UserLevel  `gorm:"type:user_level_enum;not null;column:level" json:"level"`
	Role         UserRole   `gorm:"type:user_role_enum;not null;default:'member';column:role" json:"role"`

	// Credentials (optional; only staff accounts log in)
	Username       *string `gorm:"size:50;uniqueIndex;column:username" json:"username,omitempty"`
	HashedPassword *string `gorm:"column:hashed_password" json:"-"`

	IsActive bool `gorm:"not null;default:true;column:is_active" json:"is_active"`

	// Audit
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
