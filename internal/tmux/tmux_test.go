package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePanePID(t *testing.T) {
	pid, err := ParsePanePID(" 1234\n")
	require.NoError(t, err)
	assert.Equal(t, 1234, pid)
}

func TestParsePanePIDInvalid(t *testing.T) {
	for _, out := range []string{"", "\n", "abc", "-5", "0", "12.5"} {
		_, err := ParsePanePID(out)
		require.Error(t, err, "input %q", out)
		assert.ErrorIs(t, err, ErrMissingRootID)
	}
}

func TestParsePanes(t *testing.T) {
	out := "main:1.0\tbash\t/home/leo\t100\t1\n" +
		"main:1.1\tnvim\t/home/leo/code\t205\t0\n" +
		"malformed line without tabs\n" +
		"\n"
	panes := ParsePanes(out)
	require.Len(t, panes, 2)

	assert.Equal(t, Pane{
		Target:  "main:1.0",
		Session: "main",
		Window:  "1",
		Pane:    "0",
		Path:    "/home/leo",
		Command: "bash",
		PID:     100,
		Active:  true,
	}, panes[0])

	assert.Equal(t, "main:1.1", panes[1].Target)
	assert.Equal(t, 205, panes[1].PID)
	assert.False(t, panes[1].Active)
}

func TestParsePanesEmpty(t *testing.T) {
	assert.Empty(t, ParsePanes(""))
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in                    string
		session, window, pane string
	}{
		{"main:2.1", "main", "2", "1"},
		{"work:0.0", "work", "0", "0"},
		{"a:b:3.2", "a:b", "3", "2"},
		{"nosession", "nosession", "", ""},
		{"sess:4", "sess", "4", ""},
	}
	for _, tt := range tests {
		session, window, pane := parseTarget(tt.in)
		assert.Equal(t, tt.session, session, tt.in)
		assert.Equal(t, tt.window, window, tt.in)
		assert.Equal(t, tt.pane, pane, tt.in)
	}
}

func TestSelectFlag(t *testing.T) {
	assert.Equal(t, "-L", SelectFlag(Left))
	assert.Equal(t, "-R", SelectFlag(Right))
	assert.Equal(t, "-U", SelectFlag(Up))
	assert.Equal(t, "-D", SelectFlag(Down))
	assert.Equal(t, "-l", SelectFlag(Previous))
	assert.Equal(t, "", SelectFlag(Direction("sideways")))
}
