package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps physical keys to logical controls
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Control

	// Rune bindings, including the Cyrillic layout on the same physical keys
	Runes map[rune]Control
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	t := &KeyTable{
		SpecialKeys: map[tcell.Key]Control{
			tcell.KeyLeft:   ControlMoveLeft,
			tcell.KeyRight:  ControlMoveRight,
			tcell.KeyUp:     ControlMoveUp,
			tcell.KeyDown:   ControlMoveDown,
			tcell.KeyEscape: ControlQuit,
			tcell.KeyCtrlC:  ControlQuit,
			tcell.KeyCtrlQ:  ControlQuit,
		},

		Runes: map[rune]Control{
			// Movement
			'a': ControlMoveLeft,
			'd': ControlMoveRight,
			'w': ControlMoveUp,
			's': ControlMoveDown,
			' ': ControlJump,

			// Shortcuts
			'e': ControlDash,
			'q': ControlTeleport,
			'm': ControlMagnet,

			// Role claim
			'c': ControlClaimChaser,
			't': ControlClaimTarget,

			// Cyrillic
			'ф': ControlMoveLeft,
			'в': ControlMoveRight,
			'ц': ControlMoveUp,
			'ы': ControlMoveDown,
			'у': ControlDash,
			'й': ControlTeleport,
			'ь': ControlMagnet,
			'с': ControlClaimChaser,
			'е': ControlClaimTarget,
		},
	}

	for i := 0; i < 9; i++ {
		t.Runes['1'+rune(i)] = ControlAbility1 + Control(i)
	}
	return t
}

// Lookup resolves a key event, matching runes case-insensitively
func (t *KeyTable) Lookup(ev *tcell.EventKey) Control {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if c, ok := t.Runes[r]; ok {
			return c
		}
		if c, ok := t.Runes[unicode.ToLower(r)]; ok {
			return c
		}
		return ControlNone
	}
	return t.SpecialKeys[ev.Key()]
}
