package fs

// Entry is a directory eligible for selection: an immediate child of the
// scanned directory.
type Entry struct {
	Name string
	Path string
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Path, e.Name)
}
