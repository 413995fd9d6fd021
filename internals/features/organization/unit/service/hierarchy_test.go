// internals/features/organization/unit/service/hierarchy_test.go
package service

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func lister(children map[int64][]int64) ChildLister {
	return func(parentID int64) ([]int64, error) {
		return children[parentID], nil
	}
}

func sorted(ids []int64) []int64 {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestSubtreeIDs(t *testing.T) {
	// 1 -> 2,3 ; 2 -> 4
	tree := map[int64][]int64{
		1: {2, 3},
		2: {4},
	}

	tests := []struct {
		name string
		root int64
		want []int64
	}{
		{"whole tree", 1, []int64{1, 2, 3, 4}},
		{"mid branch", 2, []int64{2, 4}},
		{"leaf is only itself", 4, []int64{4}},
		{"missing unit is only itself", 99, []int64{99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubtreeIDs(tt.root, lister(tree))
			if err != nil {
				t.Fatalf("SubtreeIDs(%d): %v", tt.root, err)
			}
			if !reflect.DeepEqual(sorted(got), tt.want) {
				t.Fatalf("SubtreeIDs(%d) = %v, want %v", tt.root, got, tt.want)
			}
		})
	}
}

func TestSubtreeIDsContainsChildSubtrees(t *testing.T) {
	tree := map[int64][]int64{
		1: {2, 3},
		2: {4, 5},
		3: {6},
	}
	parentSet, err := SubtreeIDs(1, lister(tree))
	if err != nil {
		t.Fatal(err)
	}
	in := map[int64]bool{}
	for _, id := range parentSet {
		in[id] = true
	}
	for _, child := range tree[1] {
		childSet, err := SubtreeIDs(child, lister(tree))
		if err != nil {
			t.Fatal(err)
		}
		for _, id := range childSet {
			if !in[id] {
				t.Fatalf("subtree of %d misses %d from child %d's subtree", 1, id, child)
			}
		}
	}
}

func TestSubtreeIDsCycle(t *testing.T) {
	// 1 -> 2 -> 3 -> 1
	tree := map[int64][]int64{
		1: {2},
		2: {3},
		3: {1},
	}
	if _, err := SubtreeIDs(1, lister(tree)); !errors.Is(err, ErrHierarchyCycle) {
		t.Fatalf("want ErrHierarchyCycle, got %v", err)
	}
}

func getter(parents map[int64]*int64) ParentGetter {
	return func(unitID int64) (*int64, bool, error) {
		p, ok := parents[unitID]
		return p, ok, nil
	}
}

func ptr(v int64) *int64 { return &v }

func TestAncestorChain(t *testing.T) {
	// 4 -> 2 -> 1 (root); 3 -> 1
	parents := map[int64]*int64{
		1: nil,
		2: ptr(1),
		3: ptr(1),
		4: ptr(2),
	}

	tests := []struct {
		name  string
		start int64
		want  []int64
	}{
		{"leaf to root", 4, []int64{4, 2, 1}},
		{"root alone", 1, []int64{1}},
		{"missing start yields empty chain", 99, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AncestorChain(tt.start, getter(parents))
			if err != nil {
				t.Fatalf("AncestorChain(%d): %v", tt.start, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("AncestorChain(%d) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestAncestorChainDanglingParent(t *testing.T) {
	// 2's parent 7 does not exist: the chain stops at what is real
	parents := map[int64]*int64{
		2: ptr(7),
	}
	got, err := AncestorChain(2, getter(parents))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("got %v, want [2]", got)
	}
}

func TestAncestorChainCycle(t *testing.T) {
	parents := map[int64]*int64{
		1: ptr(2),
		2: ptr(1),
	}
	if _, err := AncestorChain(1, getter(parents)); !errors.Is(err, ErrHierarchyCycle) {
		t.Fatalf("want ErrHierarchyCycle, got %v", err)
	}
}
