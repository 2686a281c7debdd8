package game

import (
	"log"

	"raycastdemo/internal/components"
	"raycastdemo/internal/engine"
)

// Controls are the panel's outgoing events. Widgets invoke them, Bind
// routes them to a RaycastDemo.
type Controls struct {
	CastCountChanged   engine.EventWithArg[string]
	MinDistanceChanged engine.EventWithArg[string]
	MaxDistanceChanged engine.EventWithArg[string]
	DebugLineToggled   engine.EventWithArg[bool]

	Randomize       engine.Event
	RaycastCommands engine.Event
	RaycastOld      engine.Event

	lastHits  int
	lastCasts int
}

// Bind hooks every control to demo. Setter errors are logged and the
// previous value is kept.
func (c *Controls) Bind(demo *components.RaycastDemo) {
	c.CastCountChanged.AddListener(func(s string) {
		if err := demo.SetCastCount(s); err != nil {
			log.Printf("Controls: %v", err)
		}
	})
	c.MinDistanceChanged.AddListener(func(s string) {
		if err := demo.SetMinDistance(s); err != nil {
			log.Printf("Controls: %v", err)
		}
	})
	c.MaxDistanceChanged.AddListener(func(s string) {
		if err := demo.SetMaxDistance(s); err != nil {
			log.Printf("Controls: %v", err)
		}
	})
	c.DebugLineToggled.AddListener(func(on bool) {
		demo.UseDebugLine = on
	})

	c.Randomize.AddListener(demo.RandomizeCasts)
	c.RaycastCommands.AddListener(func() {
		c.record(demo.DoRaycastCommands())
	})
	c.RaycastOld.AddListener(func() {
		c.record(demo.DoRaycastOld())
	})
}

// Unbind drops all listeners.
func (c *Controls) Unbind() {
	c.CastCountChanged.RemoveAllListeners()
	c.MinDistanceChanged.RemoveAllListeners()
	c.MaxDistanceChanged.RemoveAllListeners()
	c.DebugLineToggled.RemoveAllListeners()
	c.Randomize.RemoveAllListeners()
	c.RaycastCommands.RemoveAllListeners()
	c.RaycastOld.RemoveAllListeners()
}

func (c *Controls) record(results []components.CastResult) {
	c.lastCasts = len(results)
	c.lastHits = 0
	for _, r := range results {
		if r.Hit {
			c.lastHits++
		}
	}
}

// LastCast reports hits and casts of the most recent raycast button.
func (c *Controls) LastCast() (hits, casts int) {
	return c.lastHits, c.lastCasts
}
