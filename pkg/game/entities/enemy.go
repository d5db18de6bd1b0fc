package entities

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"stonesnspells/pkg/engine/physics"
)

// EnemyInvulnerability is the number of ticks an enemy drops further hits after one lands.
const EnemyInvulnerability = 900

// EnemyKind selects an enemy's stats and behaviour.
type EnemyKind int

const (
	EnemyEvilRock EnemyKind = iota
	EnemySoundBat
	EnemyGolemBoss
)

// EnemyInfo describes one enemy kind. Update and Sprite are the per-kind behaviour.
type EnemyInfo struct {
	Name     string
	Stats    Stats
	Width    int
	Height   int
	ImageW   int
	ImageH   int
	Obstacle bool // flying enemies pass over obstacles
	Boss     bool // kept in the room when dead

	Update func(e *Enemy, t Tick)
	Sprite func(e *Enemy) string
}

// EnemyTypes maps enemy kinds to their stats and behaviour
var EnemyTypes map[EnemyKind]EnemyInfo

func init() {
	EnemyTypes = map[EnemyKind]EnemyInfo{
		EnemyEvilRock: {
			Name:  "Evil Rock",
			Stats: Stats{HP: 2, Attack: 1, Speed: 1},
			Width: 50, Height: 50, ImageW: 50, ImageH: 50,
			Obstacle: true,
			Update:   chasePlayer,
			Sprite:   func(*Enemy) string { return "evil_rock" },
		},
		EnemySoundBat: {
			Name:  "Sound Bat",
			Stats: Stats{HP: 1, Attack: 1, Speed: 2},
			Width: 50, Height: 22, ImageW: 50, ImageH: 50,
			Update: updateSoundBat,
			Sprite: soundBatSprite,
		},
		EnemyGolemBoss: {
			Name:  "Evil Golem",
			Stats: Stats{HP: 15, Attack: 2, Speed: 1},
			Width: 100, Height: 100, ImageW: 100, ImageH: 100,
			Obstacle: true,
			Boss:     true,
			Update:   updateGolemBoss,
			Sprite:   golemBossSprite,
		},
	}
}

// Enemy is a hostile creature. Its kind picks the behaviour; per-kind state lives in
// the matching state struct.
type Enemy struct {
	Creature
	Variant EnemyKind

	lock  TickLock
	bat   *batState
	golem *golemState
}

// NewEnemy creates an enemy of the given kind with its top-left corner at (x, y).
func NewEnemy(kind EnemyKind, x, y int) *Enemy {
	info, ok := EnemyTypes[kind]
	if !ok {
		panic(fmt.Sprintf("entities: unknown enemy kind %d", int(kind)))
	}
	e := &Enemy{
		Variant: kind,
		lock:    NewTickLock(EnemyInvulnerability),
	}
	body := physics.Body{X: x, Y: y, W: info.Width, H: info.Height, ImageW: info.ImageW, ImageH: info.ImageH}
	e.Creature = newCreature(e, body, info.Stats)
	switch kind {
	case EnemySoundBat:
		e.bat = newBatState()
	case EnemyGolemBoss:
		e.golem = newGolemState()
	}
	return e
}

func (e *Enemy) Kind() physics.Kind { return physics.KindEnemy }
func (e *Enemy) IsObstacle() bool   { return EnemyTypes[e.Variant].Obstacle }

// Info returns the enemy's kind description.
func (e *Enemy) Info() EnemyInfo {
	return EnemyTypes[e.Variant]
}

// IsBoss reports whether the enemy stays in its room after dying.
func (e *Enemy) IsBoss() bool {
	return EnemyTypes[e.Variant].Boss
}

// Update advances the enemy by one tick.
func (e *Enemy) Update(t Tick) {
	e.lock.Tick()
	EnemyTypes[e.Variant].Update(e, t)
}

// Sprite returns the sprite id for the enemy's current animation frame.
func (e *Enemy) Sprite() string {
	return EnemyTypes[e.Variant].Sprite(e)
}

// TakeHit applies amount damage unless the enemy is inside its invulnerability window.
// A landed hit also knocks the enemy knockback pixels along the player's facing.
func (e *Enemy) TakeHit(t Tick, amount, knockback int) bool {
	if !e.lock.TryAcquire() {
		return false
	}
	e.HP -= amount
	if knockback > 0 && t.Player != nil {
		dx, dy := t.Player.Facing.Delta()
		e.SetPos(e.body.X+dx*knockback, e.body.Y+dy*knockback, t.Arena)
	}
	return true
}

// Invulnerable reports whether hits are currently dropped.
func (e *Enemy) Invulnerable() bool {
	return e.lock.Held()
}

// ContactDamage returns the damage touching the enemy deals this tick. The golem only
// hurts while it is swinging.
func (e *Enemy) ContactDamage() int {
	if e.golem != nil && e.golem.swing <= 0 {
		return 0
	}
	return e.Attack
}

// Projectiles returns projectiles the enemy owns and updates itself.
func (e *Enemy) Projectiles() []*Projectile {
	if e.golem == nil {
		return nil
	}
	blasts := make([]*Projectile, 0, e.golem.blasts.Size())
	e.golem.blasts.Each(func(p *Projectile) {
		blasts = append(blasts, p)
	})
	return blasts
}

// chasePlayer steps towards the player's aim point on each axis that still has a distance.
func chasePlayer(e *Enemy, t Tick) {
	px, py := t.Player.AimPoint()
	ex, ey := e.body.Center()
	switch {
	case px > ex:
		e.Move(physics.East, t.Arena)
	case px < ex:
		e.Move(physics.West, t.Arena)
	}
	switch {
	case py > ey:
		e.Move(physics.South, t.Arena)
	case py < ey:
		e.Move(physics.North, t.Arena)
	}
}

// Sound bat timings
const (
	BatMoveChangeDelay = 50
	BatWaveDelay       = 225
	BatWingDelay       = 15
)

type batState struct {
	moveDir   int
	multi     bool
	moveCycle int
	waveCycle int
	wingCount int
	wingsUp   bool
}

func newBatState() *batState {
	return &batState{moveCycle: BatMoveChangeDelay, waveCycle: BatWaveDelay}
}

// batWander maps a rolled direction to the steps taken each tick. A multi roll adds
// the clockwise neighbour: N+W, N+E, S+E, S+W.
func batWander(dir int, multi bool) []physics.Direction {
	if !multi {
		return []physics.Direction{physics.Direction(dir)}
	}
	switch dir {
	case 0:
		return []physics.Direction{physics.North, physics.West}
	case 1:
		return []physics.Direction{physics.North, physics.East}
	case 2:
		return []physics.Direction{physics.South, physics.East}
	default:
		return []physics.Direction{physics.South, physics.West}
	}
}

func updateSoundBat(e *Enemy, t Tick) {
	s := e.bat
	if s.moveCycle < 0 {
		s.moveDir = t.Rand.Intn(4)
		s.multi = t.Rand.Intn(2) == 1
		s.moveCycle = BatMoveChangeDelay
	} else {
		s.moveCycle--
	}
	for _, d := range batWander(s.moveDir, s.multi) {
		e.Move(d, t.Arena)
	}

	if s.waveCycle < 0 {
		t.Arena.AddProjectile(NewBatWave(e, t.Player))
		s.waveCycle = BatWaveDelay
	} else {
		s.waveCycle--
	}

	s.wingCount++
	if s.wingCount >= BatWingDelay {
		s.wingCount = 0
		s.wingsUp = !s.wingsUp
	}
}

func soundBatSprite(e *Enemy) string {
	if e.bat.wingsUp {
		return "bat_wings_up"
	}
	return "bat_wings_down"
}

// Golem boss timings
const (
	GolemBlastCooldown  = 300
	GolemDrillRange     = 100
	GolemDrillCooldown  = 400
	GolemSwingDuration  = 100
	GolemWalkFrameDelay = 15
)

type golemState struct {
	blastCD   int
	drillCD   int
	swing     int
	walkCount int
	walkAlt   bool
	blasts    mapset.Set[*Projectile]
	spent     *stack.Stack[*Projectile]
}

func newGolemState() *golemState {
	return &golemState{
		blastCD: GolemBlastCooldown,
		drillCD: GolemDrillCooldown,
		blasts:  mapset.New[*Projectile](),
		spent:   stack.New[*Projectile](),
	}
}

// Swinging reports whether the golem's melee swing is running.
func (e *Enemy) Swinging() bool {
	return e.golem != nil && e.golem.swing > 0
}

// SwingPhase returns the golem's swing animation phase 1..5, or 0 when not swinging.
func (e *Enemy) SwingPhase() int {
	if !e.Swinging() {
		return 0
	}
	switch s := e.golem.swing; {
	case s >= GolemSwingDuration*5/6:
		return 1
	case s >= GolemSwingDuration*4/6:
		return 2
	case s >= GolemSwingDuration*3/6:
		return 3
	case s >= GolemSwingDuration*2/6:
		return 4
	default:
		return 5
	}
}

func updateGolemBoss(e *Enemy, t Tick) {
	g := e.golem
	if g.swing > 0 {
		g.swing--
	}

	px, py := t.Player.AimPoint()
	gx, gy := e.body.HitboxCenter()
	dx, dy := abs(px-gx), abs(py-gy)
	// Lined up on one axis only, the golem neither swings nor fires.
	inRange := dx < GolemDrillRange && dy < GolemDrillRange
	outOfRange := dx >= GolemDrillRange && dy >= GolemDrillRange

	switch {
	case inRange && g.drillCD < 0 && g.swing <= 0:
		g.swing = GolemSwingDuration
		g.drillCD = GolemDrillCooldown
	case outOfRange && g.blastCD < 0:
		g.fire(NewGolemBlast(e, t.Player))
		g.blastCD = GolemBlastCooldown
	default:
		g.drillCD--
		g.blastCD--
	}

	chasePlayer(e, t)

	g.blasts.Each(func(p *Projectile) {
		p.Update(t)
	})
	for g.spent.Size() > 0 {
		g.blasts.Remove(g.spent.Pop())
	}

	g.walkCount++
	if g.walkCount >= GolemWalkFrameDelay {
		g.walkCount = 0
		g.walkAlt = !g.walkAlt
	}
}

func (g *golemState) fire(p *Projectile) {
	p.onTerminate = func(spent *Projectile) {
		g.spent.Push(spent)
	}
	g.blasts.Put(p)
}

func golemBossSprite(e *Enemy) string {
	if phase := e.SwingPhase(); phase > 0 {
		return fmt.Sprintf("golem_swing_%d", phase)
	}
	if e.golem.walkAlt {
		return "golem_walk_2"
	}
	return "golem_walk_1"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
