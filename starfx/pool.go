// Package starfx bursts pooled star entities out of a UI anchor and returns
// them to the pool when their animation completes.
package starfx

import (
	"github.com/automoto/starfx/components"
	"github.com/yohamta/donburi"
)

// Reserve returns, in pool order, up to max stars that are not in flight.
// In-flight stars are skipped, never preempted, so a burst against a
// nearly exhausted pool simply comes out smaller.
func Reserve(pool []*donburi.Entry, max int) []*donburi.Entry {
	if max <= 0 {
		return nil
	}
	var reserved []*donburi.Entry
	for _, e := range pool {
		if len(reserved) == max {
			break
		}
		if e == nil || !e.Valid() || !e.HasComponent(components.Star) {
			continue
		}
		if components.Star.Get(e).Active {
			continue
		}
		reserved = append(reserved, e)
	}
	return reserved
}

// CountFree is the number of stars available to the next burst.
func CountFree(pool []*donburi.Entry) int {
	n := 0
	for _, e := range pool {
		if e == nil || !e.Valid() || !e.HasComponent(components.Star) {
			continue
		}
		if !components.Star.Get(e).Active {
			n++
		}
	}
	return n
}
