// Package start rolls the procedural opening hand of a new life: the people
// already around the hero and the items (or traits) the hero begins with,
// including the stat modifiers those items apply to the all-fives baseline.
package start

import (
	"math/rand/v2"

	"github.com/epokha-game/epokha/internal/models"
)

// Roll produces starting NPCs and items for the chosen settings.
func Roll(rng *rand.Rand, settings models.Settings) *models.StartRoll {
	npcs := rollNPCs(rng, settings.LocationType)
	items, statMods := rollItems(rng, settings.LocationType, settings.Gender)
	return &models.StartRoll{NPCs: npcs, Items: items, StatMods: statMods}
}

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.IntN(len(pool))]
}

func rollChance(rng *rand.Rand, percent float64) bool {
	return rng.Float64()*100 < percent
}

// rollNPCs assembles the hero's starting circle. Probabilities shape a
// plausible nineties family: a mother is near-certain, a father less so, and
// if neither rolls, a grandparent is guaranteed — somebody has to raise the
// kid.
func rollNPCs(rng *rand.Rand, locationType string) []models.Entity {
	pool, ok := npcPools[locationType]
	if !ok {
		pool = npcPools["town"]
	}

	var result []models.Entity
	usedDescs := make(map[string]bool)

	add := func(e models.Entity) {
		result = append(result, e)
		usedDescs[e.Desc] = true
	}
	// pickFresh draws a candidate not yet used; reports false when the whole
	// sub-pool is exhausted.
	pickFresh := func(sub []models.Entity) (models.Entity, bool) {
		fresh := make([]models.Entity, 0, len(sub))
		for _, e := range sub {
			if !usedDescs[e.Desc] {
				fresh = append(fresh, e)
			}
		}
		if len(fresh) == 0 {
			return models.Entity{}, false
		}
		return pick(rng, fresh), true
	}

	if rollChance(rng, 90) {
		add(pick(rng, pool.Mothers))
	}
	if rollChance(rng, 70) {
		add(pick(rng, pool.Fathers))
	}
	if len(result) == 0 {
		add(pick(rng, pool.Grandparents))
	}

	if rollChance(rng, 60) {
		if gp, ok := pickFresh(pool.Grandparents); ok {
			add(gp)
		}
	}
	if rollChance(rng, 30) {
		if gp, ok := pickFresh(pool.Grandparents); ok {
			add(gp)
		}
	}

	if rollChance(rng, 50) {
		if sib, ok := pickFresh(pool.Siblings); ok {
			add(sib)
		}
	}
	if rollChance(rng, 25) {
		if sib, ok := pickFresh(pool.Siblings); ok {
			add(sib)
		}
	}

	if rollChance(rng, 70) {
		if fr, ok := pickFresh(pool.Friends); ok {
			add(fr)
		}
	}
	if rollChance(rng, 40) {
		if fr, ok := pickFresh(pool.Friends); ok {
			add(fr)
		}
	}

	if rollChance(rng, 50) {
		if nb, ok := pickFresh(pool.Neighbors); ok {
			add(nb)
		}
	}
	if rollChance(rng, 45) {
		if an, ok := pickFresh(pool.Animals); ok {
			add(an)
		}
	}

	return result
}

// rollItems draws starting items: one guaranteed, then more with a chance
// that decays by 12 points per item from 75% down to a 10% floor.
func rollItems(rng *rand.Rand, locationType, gender string) ([]models.StartItem, map[string]int) {
	poolData, ok := itemPools[locationType]
	if !ok {
		poolData = itemPools["town"]
	}

	pool := append([]models.StartItem{}, poolData.Common...)
	switch gender {
	case "male":
		pool = append(pool, poolData.Boys...)
	case "female":
		pool = append(pool, poolData.Girls...)
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var result []models.StartItem
	statMods := make(map[string]int)
	usedNames := make(map[string]bool)

	take := func(it models.StartItem) {
		result = append(result, it)
		usedNames[it.Name] = true
		statMods[it.Stat] += it.Mod
	}

	take(pool[0])

	chance := 75.0
	for i := 1; i < len(pool) && chance > 10; i++ {
		if !rollChance(rng, chance) {
			break
		}
		if usedNames[pool[i].Name] {
			continue
		}
		take(pool[i])
		chance -= 12
	}

	return result, statMods
}
