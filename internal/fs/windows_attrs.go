//go:build windows

package fs

import (
	"os"

	"golang.org/x/sys/windows"
)

const (
	fileAttributeHidden       = windows.FILE_ATTRIBUTE_HIDDEN
	fileAttributeSystem       = windows.FILE_ATTRIBUTE_SYSTEM
	fileAttributeReparsePoint = windows.FILE_ATTRIBUTE_REPARSE_POINT
)

// getFileAttributes reads the attributes of fullPath, retrying with the bare
// name when the full path does not resolve.
func getFileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}

	attrs, err := readAttributes(target)
	if err == nil {
		return attrs, nil
	}
	if os.IsNotExist(err) && fullPath != "" && fullPath != name {
		if alt, altErr := readAttributes(name); altErr == nil {
			return alt, nil
		}
	}
	return 0, err
}

func readAttributes(path string) (uint32, error) {
	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(ptr)
}
