// Package tmux shells out to the tmux server for pane discovery, key
// forwarding, and pane selection.
package tmux

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingRootID means no usable pane root pid could be obtained.
var ErrMissingRootID = errors.New("no pane root pid available")

// Pane is one tmux pane as reported by list-panes.
type Pane struct {
	Target  string // e.g. "main:2.1"
	Session string
	Window  string
	Pane    string
	Path    string // pane_current_path
	Command string // pane_current_command
	PID     int    // pane_pid, the pane's root process
	Active  bool
}

// Direction is a pane-navigation direction.
type Direction string

const (
	Left     Direction = "left"
	Right    Direction = "right"
	Up       Direction = "up"
	Down     Direction = "down"
	Previous Direction = "previous" // last active pane
)

var selectFlags = map[Direction]string{
	Left:     "-L",
	Right:    "-R",
	Up:       "-U",
	Down:     "-D",
	Previous: "-l",
}

// SelectFlag returns the select-pane flag for a direction, or "" if the
// direction is unknown.
func SelectFlag(d Direction) string {
	return selectFlags[d]
}

// InsideTmux reports whether the current process runs under a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// CurrentPanePID returns the root process id of the active pane.
func CurrentPanePID() (int, error) {
	if !InsideTmux() {
		return 0, errors.Wrap(ErrMissingRootID, "not inside tmux")
	}
	out, err := exec.Command("tmux", "display-message", "-p", "#{pane_pid}").Output()
	if err != nil {
		return 0, errors.Wrapf(ErrMissingRootID, "display-message: %v", err)
	}
	return ParsePanePID(string(out))
}

// ParsePanePID parses tmux display-message output into a positive pid.
func ParsePanePID(out string) (int, error) {
	s := strings.TrimSpace(out)
	if s == "" {
		return 0, errors.Wrap(ErrMissingRootID, "empty pane pid")
	}
	pid, err := strconv.Atoi(s)
	if err != nil || pid <= 0 {
		return 0, errors.Wrapf(ErrMissingRootID, "bad pane pid %q", s)
	}
	return pid, nil
}

// ListPanes returns every pane known to the tmux server.
func ListPanes() ([]Pane, error) {
	out, err := exec.Command("tmux", "list-panes", "-a", "-F",
		"#{session_name}:#{window_index}.#{pane_index}\t#{pane_current_command}\t#{pane_current_path}\t#{pane_pid}\t#{pane_active}").Output()
	if err != nil {
		return nil, errors.Wrap(err, "tmux list-panes")
	}
	return ParsePanes(string(out)), nil
}

// ParsePanes parses tmux list-panes output. Malformed lines are skipped.
func ParsePanes(out string) []Pane {
	var panes []Pane
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 5)
		if len(fields) < 5 {
			continue
		}
		target, cmd, path, pidStr, active := fields[0], fields[1], fields[2], fields[3], fields[4]
		pid, _ := strconv.Atoi(pidStr)
		session, window, pane := parseTarget(target)
		panes = append(panes, Pane{
			Target:  target,
			Session: session,
			Window:  window,
			Pane:    pane,
			Path:    path,
			Command: cmd,
			PID:     pid,
			Active:  active == "1",
		})
	}
	return panes
}

// SelectPane moves the active pane in the given direction.
func SelectPane(d Direction) error {
	flag := SelectFlag(d)
	if flag == "" {
		return errors.Errorf("unknown direction %q", d)
	}
	return errors.Wrap(exec.Command("tmux", "select-pane", flag).Run(), "select-pane")
}

// SendKeysToActive forwards a key (tmux key syntax, e.g. "C-h") to the
// active pane, the only pane a navigation key press can belong to.
func SendKeysToActive(key string) error {
	return errors.Wrap(exec.Command("tmux", "send-keys", key).Run(), "send-keys")
}

// SwitchToPane switches the tmux client to the given pane.
func SwitchToPane(target string) error {
	session, window, _ := parseTarget(target)
	sessionWindow := session + ":" + window
	if err := exec.Command("tmux", "switch-client", "-t", sessionWindow).Run(); err != nil {
		return errors.Wrap(err, "switch-client")
	}
	return errors.Wrap(exec.Command("tmux", "select-pane", "-t", target).Run(), "select-pane")
}

// CapturePane captures the last visible lines of a pane's content.
func CapturePane(target string, lines int) (string, error) {
	out, err := exec.Command("tmux", "capture-pane", "-t", target, "-e", "-p", "-S",
		"-"+strconv.Itoa(lines)).Output()
	if err != nil {
		return "", errors.Wrapf(err, "capture-pane %s", target)
	}
	return string(out), nil
}

// parseTarget splits "foo:2.1" into session="foo", window="2", pane="1".
func parseTarget(s string) (session, window, pane string) {
	colonIdx := strings.LastIndex(s, ":")
	if colonIdx < 0 {
		return s, "", ""
	}
	session = s[:colonIdx]
	rest := s[colonIdx+1:]
	dotIdx := strings.LastIndex(rest, ".")
	if dotIdx < 0 {
		return session, rest, ""
	}
	return session, rest[:dotIdx], rest[dotIdx+1:]
}
