package components

import (
	"log"

	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineState is the lifecycle of a HitLineRenderer.
type LineState int

const (
	LineIdle LineState = iota
	LineActive
	LineDestroyed
)

func (s LineState) String() string {
	switch s {
	case LineIdle:
		return "Idle"
	case LineActive:
		return "Active"
	case LineDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// HitLineRenderer shows a two-point line for Duration seconds and then
// destroys its GameObject. It needs a LineRenderer on the same object.
type HitLineRenderer struct {
	engine.BaseComponent
	Line       *LineRenderer
	Duration   float32
	StartPoint rl.Vector3
	EndPoint   rl.Vector3
	state      LineState
}

func NewHitLineRenderer() *HitLineRenderer {
	return &HitLineRenderer{Duration: 5}
}

func (h *HitLineRenderer) State() LineState {
	return h.state
}

// Activate keeps the LineRenderer's existing colours.
func (h *HitLineRenderer) Activate(duration float32, start, end rl.Vector3) {
	h.activate(duration, start, end, nil)
}

func (h *HitLineRenderer) ActivateWithColor(duration float32, start, end rl.Vector3, c rl.Color) {
	h.activate(duration, start, end, &c)
}

func (h *HitLineRenderer) activate(duration float32, start, end rl.Vector3, c *rl.Color) {
	if h.state != LineIdle {
		log.Printf("HitLineRenderer: Activate ignored in state %s", h.state)
		return
	}
	h.Line = engine.GetComponent[*LineRenderer](h.GetGameObject())
	if h.Line == nil {
		h.Line = NewLineRenderer(rl.White)
		h.GetGameObject().AddComponent(h.Line)
	}

	h.Duration = duration
	h.StartPoint = start
	h.EndPoint = end
	h.Line.SetPositionCount(2)
	h.Line.SetPosition(0, start)
	h.Line.SetPosition(1, end)
	if c != nil {
		h.Line.StartColor = *c
		h.Line.EndColor = *c
	}

	h.state = LineActive
	if !h.StartCoroutine(h.lifetime) {
		log.Printf("HitLineRenderer: %s is not in a scene, lifetime not scheduled", h.GetGameObject().Name)
	}
}

func (h *HitLineRenderer) lifetime(yield func(engine.YieldInstruction) bool) {
	if !yield(engine.WaitForSeconds(h.Duration)) {
		return
	}
	g := h.GetGameObject()
	if w := h.World(); w != nil {
		w.Destroy(g)
	} else {
		g.Scene.Destroy(g)
	}
}

func (h *HitLineRenderer) OnDestroy() {
	h.state = LineDestroyed
}
