//go:build windows

package shellsetup

import (
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// DetectParentShellName walks a process snapshot to find the parent of the
// current process and returns its image name without ".exe".
func DetectParentShellName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	images := make(map[uint32]string)
	parentPID := uint32(0)
	self := uint32(os.Getpid())

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		images[entry.ProcessID] = windows.UTF16ToString(entry.ExeFile[:])
		if entry.ProcessID == self {
			parentPID = entry.ParentProcessID
		}
	}

	name, ok := images[parentPID]
	if parentPID == 0 || !ok {
		return ""
	}
	return strings.TrimSuffix(strings.ToLower(filepath.Base(name)), ".exe")
}
