package model

// Group is a named tag that repositories belong to, many-to-many.
// The name is the unique key. Abbrev controls whether list views collapse
// the group's members into a one-line count instead of a full table.
type Group struct {
	Name   string `json:"name" yaml:"name"`
	Note   string `json:"note" yaml:"note"`
	Abbrev *bool  `json:"abbrev,omitempty" yaml:"abbrev,omitempty"`
}

// NewGroup builds a group with an empty note and the abbrev flag off.
func NewGroup(name string) Group {
	return NewGroupWith(name, "", false)
}

// NewGroupWith builds a group with every field supplied.
func NewGroupWith(name, note string, abbrev bool) Group {
	return Group{Name: name, Note: note, Abbrev: &abbrev}
}

// IsAbbrev reports the abbrev flag, treating unset as false.
func (g Group) IsAbbrev() bool {
	return g.Abbrev != nil && *g.Abbrev
}
