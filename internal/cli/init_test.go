package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo/vim-mux/internal/config"
)

func TestBindings(t *testing.T) {
	out := Bindings(config.Default().Keys)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6) // comment header + five bindings

	assert.Contains(t, out, `bind-key -n 'C-h' if-shell "vim-mux check" 'send-keys C-h' 'select-pane -L'`)
	assert.Contains(t, out, `'send-keys C-j' 'select-pane -D'`)
	assert.Contains(t, out, `'send-keys C-k' 'select-pane -U'`)
	assert.Contains(t, out, `'send-keys C-l' 'select-pane -R'`)
	assert.Contains(t, out, `'send-keys C-\' 'select-pane -l'`)
}

func TestBindingsSkipsUnsetKeys(t *testing.T) {
	keys := config.Default().Keys
	keys.Previous = ""
	out := Bindings(keys)
	assert.NotContains(t, out, "select-pane -l'")
	assert.Contains(t, out, "select-pane -L'")
}
