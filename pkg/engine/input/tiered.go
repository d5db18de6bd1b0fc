// Package input turns device key codes into the logical actions the simulation reads each tick.
package input

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Combat
	ActionAttack
	ActionCast // Trigger the owned active item (fireball scroll)

	// Meta
	ActionPause
	ActionReset
	ActionDumpState // Write a developer state dump (F9)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// Debounce converts the raw events of one tick, keeping the first event for each
// device and code.
func Debounce(raws []RawInput) []DebouncedInput {
	seen := mapset.New[DebouncedInput]()
	events := make([]DebouncedInput, 0, len(raws))
	for _, raw := range raws {
		ev := NewDebouncedInput(raw)
		if seen.Has(ev) {
			continue
		}
		seen.Put(ev)
		events = append(events, ev)
	}
	return events
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Bindings are fixed.
var bindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,

	"space": ActionAttack,
	"shift": ActionCast,

	"escape":    ActionPause,
	"backquote": ActionReset,
	"f9":        ActionDumpState,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,
	"gamepad_a":          ActionAttack,
	"gamepad_b":          ActionCast,
	"gamepad_start":      ActionPause,
	"gamepad_back":       ActionReset,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionAttack:
		return "Attack"
	case ActionCast:
		return "Cast"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionDumpState:
		return "Dump State"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Source is what the simulation reads once per tick.
type Source interface {
	// Held reports whether the action is down this tick.
	Held(a Action) bool
	// JustPressed reports whether the action went down this tick.
	JustPressed(a Action) bool
}

// State latches the held actions of the current and previous tick.
type State struct {
	held     mapset.Set[Action]
	previous mapset.Set[Action]
}

// NewState creates an empty latch.
func NewState() *State {
	return &State{
		held:     mapset.New[Action](),
		previous: mapset.New[Action](),
	}
}

// Sample replaces the held set with the actions bound to the given inputs.
// It must be called exactly once per tick.
func (s *State) Sample(events []DebouncedInput) {
	actions := make([]Action, 0, len(events))
	for _, ev := range events {
		if intent := MapToIntent(ev); intent.Action != ActionNone {
			actions = append(actions, intent.Action)
		}
	}
	s.SampleActions(actions...)
}

// SampleActions is Sample for callers that already resolved their actions.
func (s *State) SampleActions(actions ...Action) {
	s.previous = s.held
	s.held = mapset.New[Action]()
	for _, a := range actions {
		s.held.Put(a)
	}
}

// Held reports whether the action is down this tick.
func (s *State) Held(a Action) bool {
	return s.held.Has(a)
}

// JustPressed reports whether the action is down this tick but was not last tick.
func (s *State) JustPressed(a Action) bool {
	return s.held.Has(a) && !s.previous.Has(a)
}
