//go:build !windows

package shellsetup

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DetectParentShellName returns the command name of the parent process.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 1 {
		return ""
	}

	if data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", ppid)); err == nil {
		return strings.TrimSpace(string(data))
	}

	out, err := exec.Command("ps", "-o", "comm=", "-p", strconv.Itoa(ppid)).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
