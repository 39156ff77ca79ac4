package render

// Scancode identifies a physical keyboard key, independent of layout.
type Scancode int

// Scancodes used by the demos.
const (
	ScancodeUnknown Scancode = iota
	ScancodeW
	ScancodeA
	ScancodeS
	ScancodeD
	ScancodeUp
	ScancodeDown
	ScancodeLeft
	ScancodeRight
	ScancodeEscape
)

// Scancodes lists every known scancode except ScancodeUnknown.
var Scancodes = []Scancode{
	ScancodeW,
	ScancodeA,
	ScancodeS,
	ScancodeD,
	ScancodeUp,
	ScancodeDown,
	ScancodeLeft,
	ScancodeRight,
	ScancodeEscape,
}

// String returns the key name.
func (s Scancode) String() string {
	switch s {
	case ScancodeW:
		return "W"
	case ScancodeA:
		return "A"
	case ScancodeS:
		return "S"
	case ScancodeD:
		return "D"
	case ScancodeUp:
		return "Up"
	case ScancodeDown:
		return "Down"
	case ScancodeLeft:
		return "Left"
	case ScancodeRight:
		return "Right"
	case ScancodeEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyboardState reports which keys were held when the snapshot was taken.
type KeyboardState interface {
	IsPressed(key Scancode) bool
}

// KeySet is a KeyboardState backed by a set of held keys.
type KeySet map[Scancode]bool

// NewKeySet returns a KeySet with the given keys held.
func NewKeySet(keys ...Scancode) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// IsPressed returns whether key is held.
func (s KeySet) IsPressed(key Scancode) bool {
	return s[key]
}
