package laser

import "sort"

// ExclusionSet names surfaces that never stop the beam. It is immutable once built.
type ExclusionSet struct {
	names map[string]struct{}
}

// DefaultExclusions are the cart's decorative inserts: they carry colliders
// but are not physical surfaces an object could land on.
var DefaultExclusions = NewExclusionSet(
	"In Cart",
	"Capsule Mid",
	"Capsule Left",
	"Capsule Right",
)

func NewExclusionSet(names ...string) ExclusionSet {
	set := ExclusionSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		set.names[n] = struct{}{}
	}
	return set
}

func (s ExclusionSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

func (s ExclusionSet) Len() int {
	return len(s.names)
}

// Names returns the members sorted.
func (s ExclusionSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
