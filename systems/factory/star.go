package factory

import (
	"log"

	"github.com/automoto/starfx/archetypes"
	"github.com/automoto/starfx/components"
	"github.com/automoto/starfx/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StarQuota is how many pooled stars one container parents.
type StarQuota struct {
	Parent *gamemath.Rect
	Count  int
}

// CreateStarPool pre-allocates size inactive stars. Quotas are filled in
// order; stars left over after every quota is met are dealt round-robin.
// The pool slice order is the reservation order.
func CreateStarPool(ecs *ecs.ECS, quotas []StarQuota, size int, img *ebiten.Image, r, g, b float32) []*donburi.Entry {
	if len(quotas) == 0 || size <= 0 {
		log.Printf("Warning: star pool not created (containers=%d, size=%d)", len(quotas), size)
		return nil
	}

	parents := make([]*gamemath.Rect, 0, size)
	for _, q := range quotas {
		for i := 0; i < q.Count && len(parents) < size; i++ {
			parents = append(parents, q.Parent)
		}
	}
	for i := 0; len(parents) < size; i++ {
		parents = append(parents, quotas[i%len(quotas)].Parent)
	}

	pool := make([]*donburi.Entry, size)
	for slot, parent := range parents {
		pool[slot] = createStar(ecs, slot, parent, img, r, g, b)
	}
	log.Printf("[StarFX] Pool ready: %d stars across %d containers", size, len(quotas))
	return pool
}

func createStar(ecs *ecs.ECS, slot int, parent *gamemath.Rect, img *ebiten.Image, r, g, b float32) *donburi.Entry {
	star := archetypes.Star.Spawn(ecs)

	data := components.StarData{
		Slot:   slot,
		Parent: parent,
		Rest:   parent.Center(),
	}
	data.Reset()
	components.Star.SetValue(star, data)

	components.Sprite.SetValue(star, components.SpriteData{
		Image:  img,
		PivotX: 0.5,
		PivotY: 0.5,
		R:      r,
		G:      g,
		B:      b,
	})
	return star
}
