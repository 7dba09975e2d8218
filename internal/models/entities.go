package models

import "fmt"

// EntityList is an ordered collection of lore entities keyed by unique name.
type EntityList []Entity

// Find returns a pointer to the entity with the given name, or nil.
func (l EntityList) Find(name string) *Entity {
	for i := range l {
		if l[i].Name == name {
			return &l[i]
		}
	}
	return nil
}

// AddOrIgnore appends a new entity unless the name is already taken. The
// first write wins; a duplicate add never touches the existing description.
func (l *EntityList) AddOrIgnore(name, desc string) {
	if name == "" || l.Find(name) != nil {
		return
	}
	if desc == "" {
		desc = "No description."
	}
	*l = append(*l, Entity{Name: name, Desc: desc})
}

// Remove deletes the named entity. Unknown names are ignored: the narrator
// occasionally references stale or misremembered names and that is not an
// error.
func (l *EntityList) Remove(name string) {
	if name == "" {
		return
	}
	for i := range *l {
		if (*l)[i].Name == name {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return
		}
	}
}

// AppendUpdate adds a dated continuation to an existing entity's description.
// The prior text is never replaced; the new fragment is appended under a
// season-year label. Unknown names are silently dropped.
func (l EntityList) AppendUpdate(name, desc, timestampLabel string) {
	if name == "" || desc == "" {
		return
	}
	e := l.Find(name)
	if e == nil {
		return
	}
	e.Desc = e.Desc + fmt.Sprintf("\n\n*(%s)* %s", timestampLabel, desc)
}
