package obligation

import (
	"sort"

	"wepresto-backend/internal/domain/movement"
)

// mergeMovements flattens the given sets into one sequence, deduplicated by
// movement ID (first occurrence in set order wins) and sorted ascending by
// due date. The stable sort keeps the original relative order on ties.
func mergeMovements(sets ...[]movement.Movement) []movement.Movement {
	merged := make([]movement.Movement, 0)
	seen := make(map[uint64]struct{})
	for _, set := range sets {
		for _, m := range set {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			merged = append(merged, m)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DueDate.Before(merged[j].DueDate)
	})
	return merged
}

// difference returns the movements of all whose IDs do not appear in present,
// preserving their order.
func difference(all, present []movement.Movement) []movement.Movement {
	ids := make(map[uint64]struct{}, len(present))
	for _, m := range present {
		ids[m.ID] = struct{}{}
	}
	out := make([]movement.Movement, 0)
	for _, m := range all {
		if _, ok := ids[m.ID]; ok {
			continue
		}
		out = append(out, m)
	}
	return out
}
