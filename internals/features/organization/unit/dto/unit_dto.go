// internals/features/organization/unit/dto/unit_dto.go
package dto

import (
	"time"

	unitModel "gerejaku_backend/internals/features/organization/unit/model"
)

/* ===================== REQUESTS ===================== */

type CreateUnitRequest struct {
	UnitName     string `json:"unit_name" validate:"required,min=2,max=100"`
	CategoryID   int64  `json:"category_id" validate:"required,min=1"`
	ParentUnitID *int64 `json:"parent_unit_id" validate:"omitempty,min=1"`
	LeaderID     *int64 `json:"leader_id" validate:"omitempty,min=1"`
}

func (r *CreateUnitRequest) ToModel() *unitModel.OrganizationUnitModel {
	return &unitModel.OrganizationUnitModel{
		UnitName:     r.UnitName,
		CategoryID:   r.CategoryID,
		ParentUnitID: r.ParentUnitID,
		LeaderID:     r.LeaderID,
	}
}

type UpdateUnitRequest struct {
	UnitName     *string `json:"unit_name" validate:"omitempty,min=2,max=100"`
	CategoryID   *int64  `json:"category_id" validate:"omitempty,min=1"`
	ParentUnitID *int64  `json:"parent_unit_id" validate:"omitempty,min=1"`
	LeaderID     *int64  `json:"leader_id" validate:"omitempty,min=1"`
}

func (r *UpdateUnitRequest) ApplyToModel(m *unitModel.OrganizationUnitModel) {
	if r.UnitName != nil {
		m.UnitName = *r.UnitName
	}
	if r.CategoryID != nil {
		m.CategoryID = *r.CategoryID
	}
	if r.ParentUnitID != nil {
		m.ParentUnitID = r.ParentUnitID
	}
	if r.LeaderID != nil {
		m.LeaderID = r.LeaderID
	}
	now := time.Now()
	m.UpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type UnitResponse struct {
	ID           int64      `json:"id"`
	UnitName     string     `json:"unit_name"`
	CategoryID   int64      `json:"category_id"`
	ParentUnitID *int64     `json:"parent_unit_id,omitempty"`
	LeaderID     *int64     `json:"leader_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func NewUnitResponse(m *unitModel.OrganizationUnitModel) *UnitResponse {
	if m == nil {
		return nil
	}
	return &UnitResponse{
		ID:           m.ID,
		UnitName:     m.UnitName,
		CategoryID:   m.CategoryID,
		ParentUnitID: m.ParentUnitID,
		LeaderID:     m.LeaderID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func NewUnitResponses(models []unitModel.OrganizationUnitModel) []*UnitResponse {
	out := make([]*UnitResponse, 0, len(models))
	for i := range models {
		out = append(out, NewUnitResponse(&models[i]))
	}
	return out
}

/* ===================== HIERARCHY ===================== */

// TreeNode is one node of the nested hierarchy response.
type TreeNode struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	CategoryID int64       `json:"category_id"`
	LeaderID   *int64      `json:"leader_id,omitempty"`
	Children   []*TreeNode `json:"children"`
}

// BuildTree assembles the nested hierarchy from a flat unit list.
// Children attach by parent pointer; units caught in a parent cycle are
// unreachable from any root and therefore absent from the result.
func BuildTree(units []unitModel.OrganizationUnitModel) []*TreeNode {
	byParent := make(map[int64][]*unitModel.OrganizationUnitModel)
	var roots []*unitModel.OrganizationUnitModel
	for i := range units {
		u := &units[i]
		if u.ParentUnitID == nil {
			roots = append(roots, u)
		} else {
			byParent[*u.ParentUnitID] = append(byParent[*u.ParentUnitID], u)
		}
	}

	var build func(u *unitModel.OrganizationUnitModel) *TreeNode
	build = func(u *unitModel.OrganizationUnitModel) *TreeNode {
		node := &TreeNode{
			ID:         u.ID,
			Name:       u.UnitName,
			CategoryID: u.CategoryID,
			LeaderID:   u.LeaderID,
			Children:   []*TreeNode{},
		}
		for _, child := range byParent[u.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	out := make([]*TreeNode, 0, len(roots))
	for _, r := range roots {
		out = append(out, build(r))
	}
	return out
}
