// internals/features/organization/unit/service/hierarchy.go
package service

import "errors"

// ErrHierarchyCycle is returned when the stored parent graph loops back
// on itself. The schema cannot rule this out, so every traversal keeps a
// visited set and fails instead of hanging.
var ErrHierarchyCycle = errors.New("organization hierarchy contains a cycle")

// ChildLister returns the ids of the units whose parent_unit_id equals
// parentID.
type ChildLister func(parentID int64) ([]int64, error)

// SubtreeIDs collects rootID plus every unit reachable by following
// parent pointers downward, depth-first over an explicit worklist.
// rootID itself need not exist; a missing unit simply has no children.
func SubtreeIDs(rootID int64, children ChildLister) ([]int64, error) {
	visited := map[int64]bool{rootID: true}
	order := []int64{rootID}
	stack := []int64{rootID}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids, err := children(cur)
		if err != nil {
			return nil, err
		}
		for _, id := range kids {
			// each unit has a single parent pointer, so seeing a unit
			// twice means it is its own ancestor
			if visited[id] {
				return nil, ErrHierarchyCycle
			}
			visited[id] = true
			order = append(order, id)
			stack = append(stack, id)
		}
	}
	return order, nil
}

// ParentGetter resolves a unit id to its parent pointer. found reports
// whether the unit exists; parent is nil for a root.
type ParentGetter func(unitID int64) (parent *int64, found bool, err error)

// AncestorChain walks parent pointers from startID up to the root and
// returns the ids in leaf-to-root order. A missing unit ends the walk
// (matching the lookup contract: the chain is whatever exists).
func AncestorChain(startID int64, parentOf ParentGetter) ([]int64, error) {
	visited := map[int64]bool{}
	chain := []int64{}

	cur := startID
	for {
		if visited[cur] {
			return nil, ErrHierarchyCycle
		}
		visited[cur] = true

		parent, found, err := parentOf(cur)
		if err != nil {
			return nil, err
		}
		if !found {
			return chain, nil
		}
		chain = append(chain, cur)
		if parent == nil {
			return chain, nil
		}
		cur = *parent
	}
}
