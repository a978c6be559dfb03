//go:build !windows

package shellsetup

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJump installs a stand-in binary under a directory whose name needs
// quoting. Picking prints $JUMP_TEST_DEST; track appends to $JUMP_TEST_LOG.
func fakeJump(t *testing.T) (exe, log string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "bin $dir's")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	log = filepath.Join(t.TempDir(), "track.log")
	exe = filepath.Join(dir, "jump")
	body := "#!/bin/sh\n" +
		"if [ \"$1\" = track ]; then printf 'track %s\\n' \"$2\" >> \"$JUMP_TEST_LOG\"; exit 0; fi\n" +
		"printf '%s\\n' \"$JUMP_TEST_DEST\"\n"
	require.NoError(t, os.WriteFile(exe, []byte(body), 0o755))
	return exe, log
}

func readTrackLog(path string) string {
	data, _ := os.ReadFile(path)
	return string(data)
}

func TestJumpThroughFunctionIsNotTrackedAgain(t *testing.T) {
	tests := []struct {
		shell string
		// body runs after the script is loaded; bash tracks from its prompt
		// hook, so prompts are simulated by calling _jump_track.
		body string
	}{
		{"bash", `cd "$START"; _jump_track; j; _jump_track; cd "$OTHER"; _jump_track`},
		{"zsh", `cd "$START"; j; cd "$OTHER"`},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			shellPath, err := exec.LookPath(tt.shell)
			if err != nil {
				t.Skipf("%s not installed", tt.shell)
			}

			root := t.TempDir()
			start := filepath.Join(root, "start")
			dest := filepath.Join(root, "dest")
			other := filepath.Join(root, "other")
			for _, d := range []string{start, dest, other} {
				require.NoError(t, os.Mkdir(d, 0o755))
			}
			exe, log := fakeJump(t)

			script, err := Script(tt.shell, exe)
			require.NoError(t, err)

			cmd := exec.Command(shellPath, "-c", `eval "$JUMP_TEST_SCRIPT"; `+tt.body+`; [ "$PWD" = "$OTHER" ]`)
			cmd.Env = append(os.Environ(),
				"JUMP_TEST_SCRIPT="+script,
				"JUMP_TEST_LOG="+log,
				"JUMP_TEST_DEST="+dest,
				"START="+start,
				"OTHER="+other,
			)
			out, err := cmd.CombinedOutput()
			require.NoError(t, err, string(out))

			// Hooks track in the background.
			require.Eventually(t, func() bool {
				got := readTrackLog(log)
				return strings.Contains(got, "track "+start+"\n") && strings.Contains(got, "track "+other+"\n")
			}, 5*time.Second, 20*time.Millisecond, "plain cd should be tracked: %q", readTrackLog(log))
			time.Sleep(100 * time.Millisecond)
			assert.NotContains(t, readTrackLog(log), "track "+dest+"\n")
		})
	}
}
