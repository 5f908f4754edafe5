package edm

import "strconv"

// Facet is an optional non-negative refinement such as decimal precision or
// scale. The zero value means "unspecified".
type Facet struct {
	value int32
	set   bool
}

// NoFacet is the unspecified facet.
var NoFacet = Facet{}

// MakeFacet returns a specified facet.
func MakeFacet(v int32) Facet {
	return Facet{value: v, set: true}
}

// Get returns the value and whether it is specified.
func (f Facet) Get() (int32, bool) {
	return f.value, f.set
}

func (f Facet) IsSet() bool { return f.set }

func (f Facet) String() string {
	if !f.set {
		return "null"
	}
	return strconv.FormatInt(int64(f.value), 10)
}

// MaxFacet is the default promotion rule: unspecified when both sides are,
// the specified side when only one is, else the larger value.
func MaxFacet(a, b Facet) Facet {
	switch {
	case !a.set:
		return b
	case !b.set:
		return a
	case b.value > a.value:
		return b
	default:
		return a
	}
}
