package editor

import "fmt"

// KeyCode identifies a logical key. Decoding terminal input into logical
// keys is the caller's job; the machine only sees these values.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEdit
	KeyWrite
	KeyQuit
	KeyCommit
	KeyCancel
	KeyBackspace
	KeyChar
)

func (c KeyCode) String() string {
	switch c {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEdit:
		return "edit"
	case KeyWrite:
		return "write"
	case KeyQuit:
		return "quit"
	case KeyCommit:
		return "commit"
	case KeyCancel:
		return "cancel"
	case KeyBackspace:
		return "backspace"
	case KeyChar:
		return "char"
	default:
		return "none"
	}
}

// Key is a decoded input event. Rune is only meaningful for KeyChar.
type Key struct {
	Code KeyCode
	Rune rune
}

// Char returns the logical key for typing r.
func Char(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

// K returns the logical key for code.
func K(code KeyCode) Key {
	return Key{Code: code}
}

func (k Key) String() string {
	if k.Code == KeyChar {
		return fmt.Sprintf("char(%q)", k.Rune)
	}
	return k.Code.String()
}
