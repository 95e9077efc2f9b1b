package valueobject

// StringSet is an immutable set of selected names. An empty set means
// "no restriction", not "exclude all".
type StringSet struct {
	items map[string]struct{}
	order []string
}

// NewStringSet builds a set, dropping empty strings and duplicates.
func NewStringSet(values []string) StringSet {
	s := StringSet{items: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := s.items[v]; ok {
			continue
		}
		s.items[v] = struct{}{}
		s.order = append(s.order, v)
	}
	return s
}

// Len returns the number of selected names.
func (s StringSet) Len() int {
	return len(s.order)
}

// IsEmpty reports whether nothing is selected.
func (s StringSet) IsEmpty() bool {
	return len(s.order) == 0
}

// Has reports whether v is selected.
func (s StringSet) Has(v string) bool {
	_, ok := s.items[v]
	return ok
}

// Allows is the wildcard-aware membership test.
func (s StringSet) Allows(v string) bool {
	return s.IsEmpty() || s.Has(v)
}

// Values returns the selection in input order.
func (s StringSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// FilterState is the canonical dashboard filter.
type FilterState struct {
	Start    string
	End      string
	Branches StringSet
	Agents   StringSet
}
