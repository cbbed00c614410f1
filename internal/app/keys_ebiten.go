//go:build ebiten

package app

import (
	"strings"

	"mad-life/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyName maps ebiten keys onto the lower-case names used by keymaps.
func keyName(k ebiten.Key) input.Key {
	name := strings.ToLower(k.String())
	switch {
	case strings.HasPrefix(name, "digit"):
		name = strings.TrimPrefix(name, "digit")
	case name == "enter":
		name = "return"
	}
	return input.Key(name)
}
