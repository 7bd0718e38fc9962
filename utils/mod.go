package utils

import "golang.org/x/exp/constraints"

// Filter returns the items for which keep returns true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	var kept []T
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// MaxBy returns the item with the largest key. The first item wins ties.
func MaxBy[T any, K constraints.Ordered](items []T, key func(T) K) (T, bool) {
	return BestBy(items, func(a, b T) bool { return key(a) > key(b) })
}

// BestBy returns the item that no other item is better than, scanning in order. An item only
// replaces the current best when it is strictly better, so the first item wins ties.
func BestBy[T any](items []T, better func(a, b T) bool) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, item := range items[1:] {
		if better(item, best) {
			best = item
		}
	}
	return best, true
}
