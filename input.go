package walker

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard is the polled key state the scene reads once per frame.
type Keyboard interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeyboard reads the live Ebitengine key state.
type ebitenKeyboard struct{}

func (ebitenKeyboard) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (ebitenKeyboard) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// noKeyboard reports every key as released. Used by headless runs.
type noKeyboard struct{}

func (noKeyboard) IsKeyPressed(ebiten.Key) bool     { return false }
func (noKeyboard) IsKeyJustPressed(ebiten.Key) bool { return false }

// Bindings maps actions to keys. Any bound key triggers its action.
type Bindings struct {
	Up, Down, Left, Right []ebiten.Key

	Spin       []ebiten.Key
	Screenshot []ebiten.Key
	Quit       []ebiten.Key
}

// DefaultBindings returns WASD plus arrow keys for walking, Space to spin,
// F12 for a screenshot and Escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		Up:         []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:       []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:       []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:      []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Spin:       []ebiten.Key{ebiten.KeySpace},
		Screenshot: []ebiten.Key{ebiten.KeyF12},
		Quit:       []ebiten.Key{ebiten.KeyEscape},
	}
}

// keys returns the keys bound to walking direction d.
func (b *Bindings) keys(d Direction) []ebiten.Key {
	switch d {
	case DirectionUp:
		return b.Up
	case DirectionDown:
		return b.Down
	case DirectionLeft:
		return b.Left
	case DirectionRight:
		return b.Right
	}
	return nil
}

// inputState is the result of one frame's keyboard poll.
type inputState struct {
	dir        Direction
	spin       bool
	screenshot bool
	quit       bool
}

// pollKeyboard samples kb once. At most one direction is reported: the
// first held direction in priority order wins.
func pollKeyboard(kb Keyboard, b *Bindings) inputState {
	st := inputState{dir: DirectionNone}
	for _, d := range directionPriority {
		if anyPressed(kb, b.keys(d)) {
			st.dir = d
			break
		}
	}
	st.spin = anyJustPressed(kb, b.Spin)
	st.screenshot = anyJustPressed(kb, b.Screenshot)
	st.quit = anyPressed(kb, b.Quit)
	return st
}

func anyPressed(kb Keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(kb Keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// keyAliases are accepted in addition to Ebitengine's own key names.
var keyAliases = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"esc":   ebiten.KeyEscape,
	"ctrl":  ebiten.KeyControl,
	"del":   ebiten.KeyDelete,
}

// ParseKey resolves a key name such as "W", "ArrowUp" or "F12"
// (case-insensitive) to an ebiten.Key.
func ParseKey(name string) (ebiten.Key, error) {
	n := strings.TrimSpace(name)
	n = strings.TrimPrefix(n, "Key")
	if n == "" {
		return 0, fmt.Errorf("walker: empty key name")
	}
	if k, ok := keyAliases[strings.ToLower(n)]; ok {
		return k, nil
	}
	if len(n) == 1 && n[0] >= '0' && n[0] <= '9' {
		n = "Digit" + n
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), n) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("walker: unknown key %q", name)
}

// ParseKeys resolves every name in names.
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
