package config

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCodes = map[string]int32{
	"SPACE":        rl.KeySpace,
	"TAB":          rl.KeyTab,
	"ENTER":        rl.KeyEnter,
	"ESCAPE":       rl.KeyEscape,
	"BACKSPACE":    rl.KeyBackspace,
	"INSERT":       rl.KeyInsert,
	"DELETE":       rl.KeyDelete,
	"HOME":         rl.KeyHome,
	"END":          rl.KeyEnd,
	"PAGEUP":       rl.KeyPageUp,
	"PAGEDOWN":     rl.KeyPageDown,
	"UP":           rl.KeyUp,
	"DOWN":         rl.KeyDown,
	"LEFT":         rl.KeyLeft,
	"RIGHT":        rl.KeyRight,
	"LEFTSHIFT":    rl.KeyLeftShift,
	"LEFTCONTROL":  rl.KeyLeftControl,
	"LEFTALT":      rl.KeyLeftAlt,
	"RIGHTSHIFT":   rl.KeyRightShift,
	"RIGHTCONTROL": rl.KeyRightControl,
	"RIGHTALT":     rl.KeyRightAlt,
}

var keyNames = make(map[int32]string)

func init() {
	for i := int32(0); i < 26; i++ {
		keyCodes[string(rune('A'+i))] = rl.KeyA + i
	}
	for i := int32(0); i < 10; i++ {
		keyCodes[string(rune('0'+i))] = rl.KeyZero + i
	}
	for i := int32(0); i < 12; i++ {
		keyCodes[fmt.Sprintf("F%d", i+1)] = rl.KeyF1 + i
	}
	for name, code := range keyCodes {
		keyNames[code] = name
	}
}

// ParseKey maps a key name such as "L", "F5" or "Space" to a raylib key code.
// Names are case-insensitive; "Left Shift" and "LeftShift" are the same key.
func ParseKey(name string) (int32, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	code, ok := keyCodes[norm]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return code, nil
}

// KeyName is the inverse of ParseKey. Unknown codes format as their number.
func KeyName(code int32) string {
	if name, ok := keyNames[code]; ok {
		return name
	}
	return fmt.Sprintf("%d", code)
}
