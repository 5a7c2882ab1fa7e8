package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"digit", runeKey('5'), core.ActionNone},
		{"x", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	require.Len(t, keys.ShortHelp(), 3)
	require.Len(t, keys.FullHelp(), 2)
	require.Equal(t, "ctrl+s", keys.Screenshot.Help().Key)
}

func TestKeyBufferLastDirectionWins(t *testing.T) {
	b := newKeyBuffer()

	b.Press(core.ActionUp)
	b.Press(core.ActionNone)
	b.Press(core.ActionLeft)

	in := b.Next(1)
	require.True(t, in.HasDirection)
	require.Equal(t, snake.DirLeft, in.Direction)
	require.False(t, in.Quit)

	// The buffer empties after every tick.
	require.False(t, b.Next(2).HasDirection)
}

func TestKeyBufferQuit(t *testing.T) {
	b := newKeyBuffer()
	b.Press(core.ActionQuit)

	require.True(t, b.Next(1).Quit)
	require.False(t, b.Next(2).Quit)
}
