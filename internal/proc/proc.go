// Package proc reads point-in-time snapshots of the host process table.
package proc

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrSnapshotUnavailable means the process table could not be read or was
// malformed. Callers treat it as "nothing detected".
var ErrSnapshotUnavailable = errors.New("process snapshot unavailable")

// Record is one process as seen at snapshot time. A PPID of 0 means the
// process has no visible parent.
type Record struct {
	PID     int
	PPID    int
	Command string // full argv as a single string
}

// Table is an immutable snapshot of the process tree. Children is the
// reverse adjacency: parent pid to child pids, built in one pass at parse
// time so descendant walks never rescan the records.
type Table struct {
	Records  map[int]Record
	Children map[int][]int
}

// ParseTable builds a Table from raw `ps -eo pid=,ppid=,args=` output.
// Lines with non-numeric pid fields mean ps gave us garbage; the whole
// snapshot is rejected rather than silently truncated.
func ParseTable(out string) (Table, error) {
	t := Table{
		Records:  make(map[int]Record),
		Children: make(map[int][]int),
	}
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return Table{}, errors.Wrapf(ErrSnapshotUnavailable, "short ps line %q", line)
		}
		pid, err1 := strconv.Atoi(fields[0])
		ppid, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return Table{}, errors.Wrapf(ErrSnapshotUnavailable, "non-numeric pid fields in %q", line)
		}
		var command string
		if len(fields) > 2 {
			command = strings.Join(fields[2:], " ")
		}
		t.Records[pid] = Record{PID: pid, PPID: ppid, Command: command}
		t.Children[ppid] = append(t.Children[ppid], pid)
	}
	return t, nil
}

// ParseCommandLines parses `ps -o pid=,args=` output into pid -> argv.
// Malformed lines are skipped: this is a best-effort lookup, not a snapshot.
func ParseCommandLines(out string) map[int]string {
	cmds := make(map[int]string)
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		cmds[pid] = strings.Join(fields[1:], " ")
	}
	return cmds
}

// Reader snapshots host process state via ps. The zero value is ready to use.
type Reader struct{}

// ReadAll returns the full process table visible to the current user.
func (Reader) ReadAll(ctx context.Context) (Table, error) {
	out, err := exec.CommandContext(ctx, "ps", "-eo", "pid=,ppid=,args=").Output()
	if err != nil {
		return Table{}, errors.Wrapf(ErrSnapshotUnavailable, "ps: %v", err)
	}
	return ParseTable(string(out))
}

// CommandLines returns the current full command line for each given pid.
// Pids that exited since the snapshot are omitted from the result; ps exits
// nonzero in that case but still prints the survivors, so its exit status
// alone is not an error.
func (Reader) CommandLines(ctx context.Context, pids []int) (map[int]string, error) {
	if len(pids) == 0 {
		return map[int]string{}, nil
	}
	list := make([]string, 0, len(pids))
	for _, pid := range pids {
		list = append(list, strconv.Itoa(pid))
	}
	out, err := exec.CommandContext(ctx, "ps", "-o", "pid=,args=", "-p", strings.Join(list, ",")).Output()
	if err != nil && len(out) == 0 {
		if _, exited := err.(*exec.ExitError); exited {
			// Every requested pid is gone already.
			return map[int]string{}, nil
		}
		return nil, errors.Wrap(err, "ps lookup")
	}
	return ParseCommandLines(string(out)), nil
}
