package gallery

import (
	"slices"
	"strings"

	"fyne.io/fyne/v2"
)

// GroupFilter is a named set of group keys. Items whose group key is one of
// Groups pass the filter.
type GroupFilter struct {
	Title  string
	Groups []string
}

// NewGroupFilter builds a filter from a comma separated list of groups.
func NewGroupFilter(title, groups string) *GroupFilter {
	f := &GroupFilter{Title: title}
	for _, g := range strings.Split(groups, ",") {
		g = strings.TrimSpace(g)
		if g == "" || slices.Contains(f.Groups, g) {
			continue
		}
		f.Groups = append(f.Groups, g)
	}
	return f
}

func (f *GroupFilter) contains(group string) bool {
	return slices.Contains(f.Groups, group)
}

// GroupIcon associates an icon with a group key. It only affects presentation.
type GroupIcon struct {
	Group string
	Icon  fyne.Resource
}

// filterSet holds the registered filters and the active one.
// The active filter is never nil while filters exist.
type filterSet struct {
	filters []*GroupFilter
	icons   []GroupIcon
	active  *GroupFilter

	// mirror receives every add and remove so the overlay panel keeps its own
	// filter list in step without the control duplicating filter chips.
	mirror interface {
		filterAdded(f *GroupFilter)
		filterRemoved(f *GroupFilter)
	}
}

func (s *filterSet) hasFilter() bool {
	return len(s.filters) > 0
}

// add registers f. It reports whether the active filter changed.
func (s *filterSet) add(f *GroupFilter) bool {
	if f == nil || slices.Contains(s.filters, f) {
		return false
	}
	s.filters = append(s.filters, f)
	if s.mirror != nil {
		s.mirror.filterAdded(f)
	}
	return s.coerce()
}

// remove unregisters f. It reports whether the active filter changed.
func (s *filterSet) remove(f *GroupFilter) bool {
	i := slices.Index(s.filters, f)
	if i < 0 {
		return false
	}
	s.filters = slices.Delete(s.filters, i, i+1)
	if s.mirror != nil {
		s.mirror.filterRemoved(f)
	}
	if s.active != f {
		return false
	}
	s.active = nil
	s.coerce()
	return true
}

// setActive makes f the active filter, falling back to the first filter when
// f is nil. Filters that are not registered are rejected.
func (s *filterSet) setActive(f *GroupFilter) bool {
	if f != nil && !slices.Contains(s.filters, f) {
		return false
	}
	old := s.active
	s.active = f
	s.coerce()
	return old != s.active
}

func (s *filterSet) coerce() bool {
	if s.active != nil {
		return false
	}
	if len(s.filters) == 0 {
		return false
	}
	s.active = s.filters[0]
	return true
}

func (s *filterSet) activeTitle() string {
	if s.active == nil {
		return ""
	}
	return s.active.Title
}

func (s *filterSet) byTitle(title string) *GroupFilter {
	for _, f := range s.filters {
		if f.Title == title {
			return f
		}
	}
	return nil
}

func (s *filterSet) iconFor(group string) fyne.Resource {
	for _, ic := range s.icons {
		if ic.Group == group {
			return ic.Icon
		}
	}
	return nil
}

// accepts reports whether item passes the active filter.
// An accessor error is a configuration error and is returned unchanged.
func (s *filterSet) accepts(accessor GroupAccessor, item any) (bool, error) {
	if accessor == nil {
		return true, nil
	}
	if s.active == nil {
		return true, nil
	}
	key, err := accessor.GroupKey(item)
	if err != nil {
		return false, err
	}
	return s.active.contains(key), nil
}
