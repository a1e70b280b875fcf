package proc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	out := `    1     0 /sbin/init
  100     1 bash
  205   100 bash -c something
  310   205 nvim somefile.txt
`
	table, err := ParseTable(out)
	require.NoError(t, err)

	require.Len(t, table.Records, 4)
	assert.Equal(t, Record{PID: 310, PPID: 205, Command: "nvim somefile.txt"}, table.Records[310])
	assert.Equal(t, Record{PID: 1, PPID: 0, Command: "/sbin/init"}, table.Records[1])

	assert.Equal(t, []int{100}, table.Children[1])
	assert.Equal(t, []int{205}, table.Children[100])
	assert.Equal(t, []int{310}, table.Children[205])
	assert.Empty(t, table.Children[310])
}

func TestParseTableEmptyOutput(t *testing.T) {
	table, err := ParseTable("")
	require.NoError(t, err)
	assert.Empty(t, table.Records)
}

func TestParseTableNonNumericPID(t *testing.T) {
	_, err := ParseTable("PID PPID COMMAND\n100 1 bash")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
}

func TestParseTableShortLine(t *testing.T) {
	_, err := ParseTable("100 1 bash\n205")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
}

func TestParseTableCommandOptional(t *testing.T) {
	// Kernel threads can report an empty args field.
	table, err := ParseTable("42 2")
	require.NoError(t, err)
	assert.Equal(t, Record{PID: 42, PPID: 2, Command: ""}, table.Records[42])
}

func TestParseCommandLines(t *testing.T) {
	out := `  205 bash -c something
  310 nvim somefile.txt
garbage line
`
	cmds := ParseCommandLines(out)
	assert.Equal(t, map[int]string{
		205: "bash -c something",
		310: "nvim somefile.txt",
	}, cmds)
}

func TestParseCommandLinesEmpty(t *testing.T) {
	assert.Empty(t, ParseCommandLines(""))
}

func TestReadAllExpiredContext(t *testing.T) {
	// The deadline guard: once the check's context is done, ps never runs
	// and the snapshot reports unavailable.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Reader{}.ReadAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotUnavailable)
}

func TestCommandLinesExpiredContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Reader{}.CommandLines(ctx, []int{1})
	require.Error(t, err)
}
