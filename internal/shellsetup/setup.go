// Package shellsetup generates the shell integration that lets jump change
// the caller's working directory.
package shellsetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
)

// ErrUnsupportedShell is returned for shells without an integration script.
var ErrUnsupportedShell = errors.New("unsupported shell")

// Shells lists the shells Write can target.
var Shells = []string{"bash", "zsh", "fish", "pwsh"}

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable is the jump binary the script calls; os.Executable when empty.
	Executable string
}

// Write prints the integration script for shellOverride, or for the detected
// shell when shellOverride is empty.
func Write(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "jump"
		}
	}

	script, err := Script(shell, exe)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}

// Script returns the integration for shell calling the binary at exe. The
// picker records the visit for a jump made through j, so each script keeps
// its directory-change hook from recording that jump a second time.
func Script(shell, exe string) (string, error) {
	switch shell {
	case "bash":
		return fmt.Sprintf(`j() {
    local dest
    dest="$(command %[1]s "$@")" || return $?
    if [ -n "$dest" ] && [ -d "$dest" ]; then
        builtin cd -- "$dest" && _JUMP_LAST_PWD="$PWD"
    fi
}

_jump_track() {
    if [ "$PWD" != "${_JUMP_LAST_PWD:-}" ]; then
        _JUMP_LAST_PWD="$PWD"
        (command %[1]s track "$PWD" >/dev/null 2>&1 &)
    fi
}

case ";${PROMPT_COMMAND:-};" in
    *";_jump_track;"*) ;;
    *) PROMPT_COMMAND="_jump_track${PROMPT_COMMAND:+;$PROMPT_COMMAND}" ;;
esac
`, posixQuote(exe)), nil
	case "zsh":
		return fmt.Sprintf(`j() {
    local dest
    dest="$(command %[1]s "$@")" || return $?
    if [[ -n "$dest" && -d "$dest" ]]; then
        _JUMP_SKIP_TRACK=1
        builtin cd -- "$dest"
        unset _JUMP_SKIP_TRACK
    fi
}

_jump_track() {
    if [[ -n "${_JUMP_SKIP_TRACK:-}" ]]; then
        return
    fi
    (command %[1]s track "$PWD" >/dev/null 2>&1 &)
}

autoload -Uz add-zsh-hook
add-zsh-hook chpwd _jump_track
`, posixQuote(exe)), nil
	case "fish":
		return fmt.Sprintf(`function j
    set -l dest (command %[1]s $argv)
    or return $status
    if test -n "$dest" -a -d "$dest"
        set -g __jump_skip_track 1
        builtin cd -- "$dest"
        set -e __jump_skip_track
    end
end

function __jump_track --on-variable PWD
    if set -q __jump_skip_track
        return
    end
    command %[1]s track "$PWD" >/dev/null 2>&1 &
    disown 2>/dev/null
end
`, fishQuote(exe)), nil
	case "pwsh":
		return fmt.Sprintf(`function j {
    $dest = & %[1]s @args
    if ($LASTEXITCODE -eq 0 -and -not [string]::IsNullOrEmpty($dest) -and (Test-Path -LiteralPath $dest -PathType Container)) {
        Set-Location -LiteralPath $dest
    }
}
`, pwshQuote(exe)), nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(Shells, ", "))
	}
}

// posixQuote wraps s in single quotes for bash and zsh.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote wraps s in single quotes; fish unescapes \\ and \' inside them.
func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// pwshQuote wraps s in a verbatim single-quoted string.
func pwshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); isSupported(shell) {
			return shell
		}
	}

	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

func isSupported(shell string) bool {
	for _, s := range Shells {
		if s == shell {
			return true
		}
	}
	return false
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		// Login shells report themselves as "-bash".
		return strings.TrimPrefix(name, "-")
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
