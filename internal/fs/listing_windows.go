//go:build windows

package fs

// ShouldHideFromListing reports entries that are never candidates, even with
// hidden entries shown: system reparse points such as the compatibility
// junctions in a profile directory.
func ShouldHideFromListing(fullPath, name string) bool {
	if fullPath == "" && name == "" {
		return false
	}

	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return false
	}

	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}
