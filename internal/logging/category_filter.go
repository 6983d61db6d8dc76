package logging

// listCapacity mirrors original_source's category_filter.rs LIST_CAPACITY:
// "there are 10 predefined logCategories, so a capacity of 16 will allow the
// user to implement a handful of their own without this having to
// reallocate" (spec.md §8's boundary: "maximum category-set size >= 16
// without reallocation").
const listCapacity = 16

type filterMode int

const (
	modeBlacklist filterMode = iota
	modeWhitelist
)

// CategoryFilter is the Blacklist(set) | Whitelist(set) tagged union from
// spec.md §3, obeying the invariant:
//
//	enabled(c) iff (variant=Blacklist ∧ c∉set) ∨ (variant=Whitelist ∧ c∈set)
type CategoryFilter struct {
	mode       filterMode
	categories map[Category]struct{}
}

// NewBlacklist returns a filter that allows everything except what is
// explicitly disabled. An instance created with logging_on=true starts here
// (spec.md §4.5).
func NewBlacklist() *CategoryFilter {
	return &CategoryFilter{mode: modeBlacklist, categories: make(map[Category]struct{}, listCapacity)}
}

// NewWhitelist returns a filter that allows nothing except what is
// explicitly enabled. An instance created with logging_on=false starts here.
func NewWhitelist() *CategoryFilter {
	return &CategoryFilter{mode: modeWhitelist, categories: make(map[Category]struct{}, listCapacity)}
}

// Enabled reports whether category is currently allowed through the filter.
func (f *CategoryFilter) Enabled(c Category) bool {
	_, present := f.categories[c]
	switch f.mode {
	case modeBlacklist:
		return !present
	case modeWhitelist:
		return present
	default:
		return false
	}
}

// Enable allows category through the filter.
func (f *CategoryFilter) Enable(c Category) {
	switch f.mode {
	case modeBlacklist:
		delete(f.categories, c)
	case modeWhitelist:
		f.categories[c] = struct{}{}
	}
}

// Disable blocks category from the filter.
func (f *CategoryFilter) Disable(c Category) {
	switch f.mode {
	case modeBlacklist:
		f.categories[c] = struct{}{}
	case modeWhitelist:
		delete(f.categories, c)
	}
}

// EnableAll resets the filter to allow everything (spec.md §4.5
// "enable_all").
func (f *CategoryFilter) EnableAll() {
	f.mode = modeBlacklist
	f.categories = make(map[Category]struct{}, listCapacity)
}

// DisableAll resets the filter to allow nothing (spec.md §4.5
// "disable_all").
func (f *CategoryFilter) DisableAll() {
	f.mode = modeWhitelist
	f.categories = make(map[Category]struct{}, listCapacity)
}

// SetDebugLogging implements the translation rule from spec.md §4.5:
// "if categories is empty, on toggles all; otherwise, each listed category
// is enabled or disabled per on".
func (f *CategoryFilter) SetDebugLogging(categories []Category, on bool) {
	if len(categories) == 0 {
		if on {
			f.EnableAll()
		} else {
			f.DisableAll()
		}
		return
	}

	for _, c := range categories {
		if on {
			f.Enable(c)
		} else {
			f.Disable(c)
		}
	}
}
