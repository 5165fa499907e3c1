// Package keys enumerates keyboard keys using the native library's key codes.
package keys

import "fmt"

// Key is a keyboard key code.
type Key int32

// Key codes. Printable keys use their ASCII value.
const (
	Null Key = 0

	Apostrophe   Key = 39
	Comma        Key = 44
	Minus        Key = 45
	Period       Key = 46
	Slash        Key = 47
	Zero         Key = 48
	One          Key = 49
	Two          Key = 50
	Three        Key = 51
	Four         Key = 52
	Five         Key = 53
	Six          Key = 54
	Seven        Key = 55
	Eight        Key = 56
	Nine         Key = 57
	Semicolon    Key = 59
	Equal        Key = 61
	A            Key = 65
	B            Key = 66
	C            Key = 67
	D            Key = 68
	E            Key = 69
	F            Key = 70
	G            Key = 71
	H            Key = 72
	I            Key = 73
	J            Key = 74
	K            Key = 75
	L            Key = 76
	M            Key = 77
	N            Key = 78
	O            Key = 79
	P            Key = 80
	Q            Key = 81
	R            Key = 82
	S            Key = 83
	T            Key = 84
	U            Key = 85
	V            Key = 86
	W            Key = 87
	X            Key = 88
	Y            Key = 89
	Z            Key = 90
	LeftBracket  Key = 91
	Backslash    Key = 92
	RightBracket Key = 93
	Grave        Key = 96

	Space        Key = 32
	Escape       Key = 256
	Enter        Key = 257
	Tab          Key = 258
	Backspace    Key = 259
	Insert       Key = 260
	Delete       Key = 261
	Right        Key = 262
	Left         Key = 263
	Down         Key = 264
	Up           Key = 265
	PageUp       Key = 266
	PageDown     Key = 267
	Home         Key = 268
	End          Key = 269
	CapsLock     Key = 280
	ScrollLock   Key = 281
	NumLock      Key = 282
	PrintScreen  Key = 283
	Pause        Key = 284
	F1           Key = 290
	F2           Key = 291
	F3           Key = 292
	F4           Key = 293
	F5           Key = 294
	F6           Key = 295
	F7           Key = 296
	F8           Key = 297
	F9           Key = 298
	F10          Key = 299
	F11          Key = 300
	F12          Key = 301
	LeftShift    Key = 340
	LeftControl  Key = 341
	LeftAlt      Key = 342
	LeftSuper    Key = 343
	RightShift   Key = 344
	RightControl Key = 345
	RightAlt     Key = 346
	RightSuper   Key = 347

	KP0        Key = 320
	KP1        Key = 321
	KP2        Key = 322
	KP3        Key = 323
	KP4        Key = 324
	KP5        Key = 325
	KP6        Key = 326
	KP7        Key = 327
	KP8        Key = 328
	KP9        Key = 329
	KPDecimal  Key = 330
	KPDivide   Key = 331
	KPMultiply Key = 332
	KPSubtract Key = 333
	KPAdd      Key = 334
	KPEnter    Key = 335
	KPEqual    Key = 336
)

var names = map[Key]string{
	Space: "Space", Escape: "Escape", Enter: "Enter", Tab: "Tab", Backspace: "Backspace",
	Insert: "Insert", Delete: "Delete", Right: "Right", Left: "Left", Down: "Down", Up: "Up",
	PageUp: "PageUp", PageDown: "PageDown", Home: "Home", End: "End",
	LeftShift: "LeftShift", LeftControl: "LeftControl", LeftAlt: "LeftAlt", LeftSuper: "LeftSuper",
	RightShift: "RightShift", RightControl: "RightControl", RightAlt: "RightAlt", RightSuper: "RightSuper",
	KPSubtract: "KPSubtract", KPAdd: "KPAdd", KPEnter: "KPEnter",
}

// String returns a readable name for logging.
func (k Key) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	if k >= A && k <= Z || k >= Zero && k <= Nine {
		return string(rune(k))
	}
	if k >= F1 && k <= F12 {
		return fmt.Sprintf("F%d", k-F1+1)
	}
	if k >= KP0 && k <= KP9 {
		return fmt.Sprintf("KP%d", k-KP0)
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}
