package keys

// Set is an unordered set of key codes, used for possible-key resolution.
type Set map[Key]struct{}

// NewSet builds a set from the given keys.
func NewSet(ks ...Key) Set {
	s := make(Set, len(ks))
	for _, k := range ks {
		s.Add(k)
	}
	return s
}

// Add inserts a key into the set.
func (s Set) Add(k Key) {
	s[k] = struct{}{}
}

// Has reports whether the set contains k.
func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Intersects reports whether the two sets share any key.
func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for k := range small {
		if large.Has(k) {
			return true
		}
	}
	return false
}

// Empty reports whether the set has no keys.
func (s Set) Empty() bool {
	return len(s) == 0
}
