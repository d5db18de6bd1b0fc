package room

import (
	"math/rand"

	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/level"
)

// Plan is everything needed to build one room.
type Plan struct {
	ID       int
	Template level.Template
	Stairs   map[physics.Direction]int
	Width    int
	Height   int
	// Item goes into the room's chest. Rooms without an item get minecarts in every
	// chest slot.
	Item *entities.Item
}

// Build creates an inactive room from its plan. rng picks which chest slot holds the
// chest.
func Build(plan Plan, player *entities.Player, rng *rand.Rand) *Room {
	r := New(plan.ID, plan.Width, plan.Height, player)
	tmpl := plan.Template
	r.boss = tmpl.Boss
	r.combat = !tmpl.Boss && !tmpl.StairsActive

	for _, spawn := range tmpl.Enemies {
		kind, err := spawn.EnemyKind()
		if err != nil {
			// Level data is validated when it is parsed.
			panic(err)
		}
		r.AddEnemy(entities.NewEnemy(kind, spawn.X.Of(plan.Width), spawn.Y.Of(plan.Height)))
	}

	for _, c := range tmpl.ObstacleCells() {
		r.AddSimpleObstacle(c.X, c.Y)
	}

	slots := tmpl.ChestCells()
	chestSlot := -1
	if plan.Item != nil && len(slots) > 0 {
		chestSlot = rng.Intn(len(slots))
	}
	for i, c := range slots {
		x, y := c.Pixels(plan.Width, plan.Height)
		if i == chestSlot {
			r.AddObstacle(entities.NewChest(x, y, plan.Item))
			continue
		}
		r.AddObstacle(entities.NewObstacle(x, y, entities.SpriteMinecart))
	}

	for _, d := range physics.AllDirections() {
		if next, ok := plan.Stairs[d]; ok {
			r.SetStairs(d, next)
		}
	}
	if tmpl.StairsActive {
		r.ActivateStairs()
	}
	return r
}
