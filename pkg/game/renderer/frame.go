package renderer

import (
	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/hud"
	"stonesnspells/pkg/game/room"
	"stonesnspells/pkg/game/state"
)

// DrawFrame paints a full frame: floor, room contents, player, room overlays, the HUD
// and, while paused, the pause overlay.
func DrawFrame(r Renderer, g *state.Game) {
	r.DrawRect(0, 0, state.Width, state.Height, ColorFloor)
	if g.Current != nil {
		DrawRoom(r, g.Current)
	}
	DrawPlayer(r, g.Player)
	if g.Current != nil && g.Current.IsBoss() {
		drawBossOverlay(r, g.Current)
	}
	roomID := 0
	if g.Current != nil {
		roomID = g.Current.ID
	}
	DrawHUD(r, hud.Compose(g.Player, g.HUD, roomID, g.Won()), g.Messages)
	if g.Paused {
		drawPauseOverlay(r)
	}
}

// DrawRoom draws the room's obstacles, visible stairs, enemies and projectiles.
func DrawRoom(r Renderer, rm *room.Room) {
	for _, o := range rm.Obstacles() {
		b := o.Body()
		r.DrawSprite(obstacleSprite(o), b.X, b.Y)
	}
	if rm.StairsActive() {
		for _, s := range rm.Stairs() {
			b := s.Body()
			r.DrawSprite(entities.SpriteStairs, b.X, b.Y)
		}
	}
	for _, e := range rm.Enemies() {
		if e.IsDead() {
			continue
		}
		b := e.Body()
		r.DrawSprite(e.Sprite(), b.X, b.Y)
	}
	for _, p := range rm.Projectiles() {
		x, y := projectileOrigin(p)
		r.DrawSprite(p.Sprite(), x, y)
	}
}

func obstacleSprite(o physics.Collidable) string {
	switch o := o.(type) {
	case *entities.Chest:
		return o.Sprite()
	case *entities.Obstacle:
		return o.Sprite
	}
	return entities.SpriteWall
}

// projectileOrigin centres an explosion on the fireball that caused it.
func projectileOrigin(p *entities.Projectile) (x, y int) {
	b := p.Body()
	if !p.Exploded() {
		return b.X, b.Y
	}
	cx, cy := b.Center()
	return cx - entities.FireballExplosionRadius, cy - entities.FireballExplosionRadius
}

// DrawPlayer draws the player and the pickaxe.
func DrawPlayer(r Renderer, p *entities.Player) {
	if p == nil {
		return
	}
	b := p.Body()
	r.DrawSprite(p.Sprite(), b.X, b.Y)
	id, x, y := p.Pickaxe.Sprite()
	r.DrawSprite(id, x, y)
}

// drawBossOverlay shows the win banner once the boss is down, or its health bar.
func drawBossOverlay(r Renderer, rm *room.Room) {
	boss := rm.Boss()
	if boss == nil {
		return
	}
	w, h := rm.Size()
	if boss.IsDead() {
		r.DrawText(hud.Text("YOU_WIN"), 6*w/16, 6*h/12, FontTitle)
		return
	}
	x, y := 5*w/16, h/32
	length := 6 * w / 16 * max(boss.HP, 0) / boss.MaxHP
	r.DrawRect(x, y, length, h/40, ColorBossBar)
	r.DrawText(hud.Text("BOSS_NAME"), x, y+h/40+4, FontBody)
}

// DrawHUD draws the panel strip below the room.
func DrawHUD(r Renderer, panel hud.Panel, messages []string) {
	top := state.Height
	r.DrawRect(0, top, ScreenWidth, HUDHeight, ColorHUD)

	for i := 0; i < panel.MaxHP; i++ {
		heart := "heart_empty"
		if i < panel.HP {
			heart = "heart_full"
		}
		r.DrawSprite(heart, 20+i*30, top+20)
	}
	r.DrawText(panel.HPLabel, 20, top+55, FontHUD)
	r.DrawText(panel.RoomLabel, ScreenWidth-150, top+20, FontHUD)

	r.DrawText(panel.Title, 20, top+90, FontHUD)
	for i, name := range panel.Items {
		r.DrawText(name, 140+i*160, top+90, FontHUD)
	}

	if panel.Status != "" {
		r.DrawText(panel.Status, ScreenWidth/2-80, top+130, FontTitle)
	}
	if len(messages) > 0 {
		r.DrawText(messages[len(messages)-1], 20, top+170, FontBody)
	}
}

func drawPauseOverlay(r Renderer) {
	r.DrawRect(0, 0, state.Width, state.Height, ColorOverlay)
	r.DrawText(hud.Text("PAUSED"), state.Width/2-60, state.Height/2-40, FontTitle)
	r.DrawText(hud.Text("PAUSE_HINT"), state.Width/2-90, state.Height/2+10, FontBody)
	for i, line := range hud.Controls() {
		r.DrawText(line, 40, state.Height/2+60+i*22, FontBody)
	}
}
