// internals/features/organization/membership/dto/membership_dto.go
package dto

import (
	"time"

	membershipModel "gerejaku_backend/internals/features/organization/membership/model"
)

/* ===================== REQUESTS ===================== */

type CreateMembershipRequest struct {
	UserID int64 `json:"user_id" validate:"required,min=1"`
	UnitID int64 `json:"unit_id" validate:"required,min=1"`
}

func (r *CreateMembershipRequest) ToModel() *membershipModel.UserOrganizationUnitModel {
	return &membershipModel.UserOrganizationUnitModel{
		UserID: r.UserID,
		UnitID: r.UnitID,
	}
}

/* ===================== RESPONSES ===================== */

type MembershipResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	UnitID    int64      `json:"unit_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewMembershipResponse(m *membershipModel.UserOrganizationUnitModel) *MembershipResponse {
	if m == nil {
		return nil
	}
	return &MembershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		UnitID:    m.UnitID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewMembershipResponses(models []membershipModel.UserOrganizationUnitModel) []*MembershipResponse {
	out := make([]*MembershipResponse, 0, len(models))
	for i := range models {
		out = append(out, NewMembershipResponse(&models[i]))
	}
	return out
}
