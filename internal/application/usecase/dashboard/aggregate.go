// Package dashboard contains the filter-and-aggregation use cases behind the
// reporting dashboard. Every function here is pure: inputs are read-only and
// every result is a freshly allocated value.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// Tally is an ordered key→value mapping.
// Keys keep the order of their first occurrence, so iteration is reproducible.
type Tally[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newTally[K comparable, V any](capacity int) *Tally[K, V] {
	return &Tally[K, V]{
		keys:   make([]K, 0, capacity),
		values: make(map[K]V, capacity),
	}
}

// Get returns the value for key and whether it was present.
// A missing key yields the zero value of V.
func (t *Tally[K, V]) Get(key K) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in first-occurrence order.
func (t *Tally[K, V]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of distinct keys.
func (t *Tally[K, V]) Len() int {
	return len(t.keys)
}

func (t *Tally[K, V]) update(key K, fn func(V) V) {
	v, ok := t.values[key]
	if !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = fn(v)
}

// Count groups items by a derived key and counts each group.
func Count[T any, K comparable](items []T, key func(T) K) *Tally[K, int] {
	t := newTally[K, int](len(items))
	for _, item := range items {
		t.update(key(item), func(n int) int { return n + 1 })
	}
	return t
}

// SumBy groups items by a derived key and sums a numeric field per group.
// Missing values contribute zero.
func SumBy[T any, K comparable, N valueobject.Numeric](items []T, key func(T) K, value func(T) N) *Tally[K, decimal.Decimal] {
	t := newTally[K, decimal.Decimal](len(items))
	for _, item := range items {
		v := value(item).Decimal()
		t.update(key(item), func(sum decimal.Decimal) decimal.Decimal { return sum.Add(v) })
	}
	return t
}

// Total sums a numeric field across items. Missing values contribute zero.
func Total[T any, N valueobject.Numeric](items []T, value func(T) N) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(value(item).Decimal())
	}
	return sum
}

// DistinctNonEmpty de-duplicates values and drops empty strings.
// Callers must not depend on the order of the result.
func DistinctNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
