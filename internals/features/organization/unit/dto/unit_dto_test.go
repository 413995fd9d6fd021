// internals/features/organization/unit/dto/unit_dto_test.go
package dto

import (
	"testing"

	unitModel "gerejaku_backend/internals/features/organization/unit/model"
)

func ptr(v int64) *int64 { return &v }

func unit(id int64, name string, parent *int64) unitModel.OrganizationUnitModel {
	return unitModel.OrganizationUnitModel{ID: id, UnitName: name, CategoryID: 1, ParentUnitID: parent}
}

func TestBuildTree(t *testing.T) {
	units := []unitModel.OrganizationUnitModel{
		unit(1, "Branch", nil),
		unit(2, "District A", ptr(1)),
		unit(3, "District B", ptr(1)),
		unit(4, "Group A1", ptr(2)),
	}

	roots := BuildTree(units)
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	branch := roots[0]
	if branch.ID != 1 || len(branch.Children) != 2 {
		t.Fatalf("branch = %+v", branch)
	}
	districtA := branch.Children[0]
	if districtA.ID != 2 || len(districtA.Children) != 1 || districtA.Children[0].ID != 4 {
		t.Fatalf("district A subtree wrong: %+v", districtA)
	}
	if leaf := districtA.Children[0]; leaf.Children == nil || len(leaf.Children) != 0 {
		t.Fatalf("leaf children must be an empty slice, got %#v", leaf.Children)
	}
}

func TestBuildTreeMultipleRoots(t *testing.T) {
	units := []unitModel.OrganizationUnitModel{
		unit(1, "North", nil),
		unit(2, "South", nil),
		unit(3, "North Kids", ptr(1)),
	}
	roots := BuildTree(units)
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
}

func TestBuildTreeOmitsCycleMembers(t *testing.T) {
	// 2 and 3 point at each other; no root reaches them
	units := []unitModel.OrganizationUnitModel{
		unit(1, "Root", nil),
		unit(2, "Loop A", ptr(3)),
		unit(3, "Loop B", ptr(2)),
	}
	roots := BuildTree(units)
	if len(roots) != 1 || roots[0].ID != 1 || len(roots[0].Children) != 0 {
		t.Fatalf("cycle members leaked into the tree: %+v", roots)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	roots := BuildTree(nil)
	if roots == nil || len(roots) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", roots)
	}
}
