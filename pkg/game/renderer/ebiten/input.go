package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "stonesnspells/pkg/engine/input"
)

// keyCodes names the keys the bindings know about.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeySpace:      "space",
	ebiten.KeyShiftLeft:  "shift",
	ebiten.KeyShiftRight: "shift",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyBackquote:  "backquote",
	ebiten.KeyF9:         "f9",
}

// gamepadCodes names the standard-layout buttons the bindings know about.
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
	ebiten.StandardGamepadButtonCenterLeft:  "gamepad_back",
}

// keyInputs converts pressed keys into raw input events, dropping unbound keys.
func keyInputs(keys []ebiten.Key, now time.Time) []engineinput.RawInput {
	raws := make([]engineinput.RawInput, 0, len(keys))
	for _, k := range keys {
		if code, ok := keyCodes[k]; ok {
			raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
		}
	}
	return raws
}

// gamepadInputs converts pressed standard gamepad buttons into raw input events.
func gamepadInputs(pressed func(ebiten.StandardGamepadButton) bool, now time.Time) []engineinput.RawInput {
	var raws []engineinput.RawInput
	for button, code := range gamepadCodes {
		if pressed(button) {
			raws = append(raws, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code, Timestamp: now})
		}
	}
	return raws
}

// pollInputs reads everything held this tick from the keyboard and every gamepad with
// a standard layout.
func pollInputs() []engineinput.DebouncedInput {
	now := time.Now()
	raws := keyInputs(inpututil.AppendPressedKeys(nil), now)
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		raws = append(raws, gamepadInputs(func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		}, now)...)
	}
	return engineinput.Debounce(raws)
}
