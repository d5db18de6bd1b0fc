package gameplay

import (
	"github.com/sirupsen/logrus"

	"stonesnspells/pkg/engine/input"
	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/devtools"
	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/hud"
	"stonesnspells/pkg/game/state"
)

// walkOrder is the order held movement actions are applied within a tick.
var walkOrder = []struct {
	action input.Action
	dir    physics.Direction
}{
	{input.ActionMoveWest, physics.West},
	{input.ActionMoveEast, physics.East},
	{input.ActionMoveNorth, physics.North},
	{input.ActionMoveSouth, physics.South},
}

// Step advances the session by one tick using the actions sampled for it.
func (w *World) Step(src input.Source) {
	if src.JustPressed(input.ActionReset) {
		w.Reset()
		return
	}
	g := w.Game
	if src.JustPressed(input.ActionDumpState) {
		w.dumpState()
	}
	if src.JustPressed(input.ActionPause) {
		w.togglePause()
	}
	if g.Paused {
		return
	}

	g.Ticks++
	p := g.Player
	t := g.Tick()
	wasDead := p.IsDead()
	bossDown := g.Won()
	picked := len(g.HUD.Items())

	if !p.IsDead() && g.Current.IsActive() {
		for _, m := range walkOrder {
			if src.Held(m.action) {
				p.Walk(m.dir, g.Current)
			}
		}
		if src.Held(input.ActionAttack) {
			p.StartAttack()
		}
		if src.JustPressed(input.ActionCast) {
			p.Cast(t)
		}
	}

	p.Pickaxe.Update(t)
	stairs := g.Current.Update(t)
	applyContactDamage(g)
	if stairs != nil {
		w.traverse(stairs)
	}

	for _, item := range g.HUD.Items()[picked:] {
		name := hud.ItemName(item.Kind)
		logMessage(g, "Picked up %s.", name)
		w.Log.WithFields(logrus.Fields{"item": item.Kind.String(), "room": g.Current.ID}).Info("item picked up")
	}
	if !wasDead && p.IsDead() {
		w.Log.WithFields(logrus.Fields{"room": g.Current.ID, "hp": p.HP}).Warn("player died")
	}
	if !bossDown && g.Won() {
		w.Log.WithField("room", g.Current.ID).Info("boss defeated")
	}
}

// applyContactDamage hurts the player for every enemy touching them. The boss only
// hurts on contact while it is swinging.
func applyContactDamage(g *state.Game) {
	p := g.Player
	for _, e := range g.Current.Enemies() {
		if e.IsDead() {
			continue
		}
		damage := e.ContactDamage()
		if damage > 0 && physics.Collides(e, p) {
			p.Damage(damage)
		}
	}
}

// traverse moves the player through stairs into the neighbouring room, landing on
// the opposite edge.
func (w *World) traverse(s *entities.Stairs) {
	g := w.Game
	next, ok := g.Rooms[s.NextRoom]
	if !ok {
		w.Log.WithFields(logrus.Fields{"from": g.Current.ID, "to": s.NextRoom}).Error("stairs lead to a missing room")
		return
	}
	from := g.Current.ID
	b := g.Player.Body()
	x, y := next.Arrival(s.Direction, b.X, b.Y)
	g.Player.SetPos(x, y, next)
	g.EnterRoom(next.ID)
	w.Log.WithFields(logrus.Fields{"from": from, "to": next.ID}).Info("room changed")
}

func (w *World) togglePause() {
	g := w.Game
	g.Paused = !g.Paused
	if g.Paused {
		g.Current.Deactivate()
	} else {
		g.Current.Activate()
	}
	w.Log.WithField("paused", g.Paused).Debug("pause toggled")
}

func (w *World) dumpState() {
	path, err := devtools.WriteStateDump(w.opts.DumpDir, w.Game)
	if err != nil {
		logMessage(w.Game, "State dump failed: %v", err)
		w.Log.WithError(err).Warn("state dump failed")
		return
	}
	logMessage(w.Game, "State dumped to %s", path)
	w.Log.WithField("path", path).Info("state dumped")
}
