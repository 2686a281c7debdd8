package components

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"

	"raycastdemo/internal/engine"
	"raycastdemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CastResult is the outcome of one cast, in request order.
type CastResult struct {
	Hit        bool
	Point      rl.Vector3
	GameObject *engine.GameObject
}

// RaycastDemo casts one ray per direction from its GameObject and shows a
// line for every hit. It can run the casts as a batched job or one by one.
type RaycastDemo struct {
	engine.BaseComponent

	// LinePrefab names the prefab spawned per hit when UseDebugLine is false.
	LinePrefab     string
	CastDirections []rl.Vector3
	// CastDistances pairs with CastDirections. When shorter, the last entry
	// is reused for the remaining directions.
	CastDistances []float32
	// MaxHits sizes the batch results buffer. The batch still reports only
	// the closest hit per cast.
	MaxHits           int
	HitLayers         engine.LayerMask
	MinCommandsPerJob int
	UseDebugLine      bool
	HitLineColor      rl.Color
	// LineDuration is how long a hit line stays up, in seconds.
	LineDuration float32

	// RandomizeCasts settings.
	CastCount   int
	MinDistance float32
	MaxDistance float32
}

// NewRaycastDemo returns a demo with one hit per cast, red lines that last
// five seconds and three casts of distance 1 for RandomizeCasts.
func NewRaycastDemo() *RaycastDemo {
	return &RaycastDemo{
		LinePrefab:        "HitLine",
		MaxHits:           1,
		HitLayers:         engine.DefaultRaycastLayers,
		MinCommandsPerJob: 10,
		HitLineColor:      rl.Red,
		LineDuration:      5,
		CastCount:         3,
		MinDistance:       1,
		MaxDistance:       1,
	}
}

// SetCastCount parses s as the RandomizeCasts count. On error CastCount is
// left unchanged.
func (r *RaycastDemo) SetCastCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("cast count %q: %w", s, err)
	}
	r.CastCount = n
	return nil
}

// SetMinDistance parses s as the lower RandomizeCasts distance.
func (r *RaycastDemo) SetMinDistance(s string) error {
	f, err := parseFloat(s)
	if err != nil {
		return fmt.Errorf("min distance %q: %w", s, err)
	}
	r.MinDistance = f
	return nil
}

// SetMaxDistance parses s as the upper RandomizeCasts distance.
func (r *RaycastDemo) SetMaxDistance(s string) error {
	f, err := parseFloat(s)
	if err != nil {
		return fmt.Errorf("max distance %q: %w", s, err)
	}
	r.MaxDistance = f
	return nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// RandomizeCasts replaces the casts with CastCount random directions in the
// XY plane, each with a distance between MinDistance and MaxDistance.
func (r *RaycastDemo) RandomizeCasts() {
	n := max(r.CastCount, 0)
	r.CastDirections = make([]rl.Vector3, 0, n)
	r.CastDistances = make([]float32, 0, n)
	for range n {
		r.CastDirections = append(r.CastDirections, rl.Vector3{
			X: randRange(-1, 1),
			Y: randRange(-1, 1),
		})
		r.CastDistances = append(r.CastDistances, randRange(r.MinDistance, r.MaxDistance))
	}
}

// randRange returns a value between lo and hi in either order.
func randRange(lo, hi float32) float32 {
	return lo + rand.Float32()*(hi-lo)
}

// distanceFor applies the last-distance fallback.
func (r *RaycastDemo) distanceFor(i int) float32 {
	if i < len(r.CastDistances) {
		return r.CastDistances[i]
	}
	return r.CastDistances[len(r.CastDistances)-1]
}

func (r *RaycastDemo) castCount() int {
	if len(r.CastDistances) == 0 {
		if len(r.CastDirections) > 0 {
			log.Printf("RaycastDemo: %d directions but no distances, nothing to cast", len(r.CastDirections))
		}
		return 0
	}
	return len(r.CastDirections)
}

// DoRaycastCommands runs every cast as one batch and blocks until it is done.
func (r *RaycastDemo) DoRaycastCommands() []CastResult {
	world := r.World()
	if world == nil {
		log.Printf("RaycastDemo: not attached to a world")
		return nil
	}
	origin := r.GetGameObject().WorldPosition()
	n := r.castCount()
	maxHits := max(r.MaxHits, 1)

	hits := physics.NewNativeArray[physics.RaycastHit](n*maxHits, physics.AllocatorTemp)
	defer hits.Dispose()
	commands := physics.NewNativeArray[physics.RaycastCommand](n, physics.AllocatorTemp)
	defer commands.Dispose()

	for i := range n {
		commands.Set(i, physics.NewRaycastCommand(origin, r.CastDirections[i], r.distanceFor(i), r.HitLayers, maxHits))
	}

	handle, err := physics.ScheduleBatch(world, commands, hits, r.MinCommandsPerJob)
	if err != nil {
		log.Printf("RaycastDemo: schedule batch: %v", err)
		return nil
	}
	handle.Complete()

	for i := 0; i < hits.Len(); i++ {
		if h := hits.At(i); h.Hit() {
			r.showHit(world, origin, h.Point)
		}
	}

	results := make([]CastResult, n)
	for i := range n {
		h := hits.At(i)
		results[i] = CastResult{Hit: h.Hit(), Point: h.Point, GameObject: h.GameObject}
	}
	return results
}

// DoRaycastOld runs the same casts one at a time.
func (r *RaycastDemo) DoRaycastOld() []CastResult {
	world := r.World()
	if world == nil {
		log.Printf("RaycastDemo: not attached to a world")
		return nil
	}
	origin := r.GetGameObject().WorldPosition()
	n := r.castCount()

	results := make([]CastResult, n)
	for i := range n {
		h, ok := world.Raycast(origin, r.CastDirections[i], r.distanceFor(i), r.HitLayers)
		if !ok {
			continue
		}
		results[i] = CastResult{Hit: true, Point: h.Point, GameObject: h.GameObject}
		r.showHit(world, origin, h.Point)
	}
	return results
}

func (r *RaycastDemo) showHit(world engine.WorldAccess, origin, point rl.Vector3) {
	if r.UseDebugLine {
		world.DrawDebugLine(origin, point, r.HitLineColor, r.LineDuration)
		return
	}
	line, err := world.Instantiate(r.LinePrefab)
	if err != nil {
		log.Printf("RaycastDemo: %v", err)
		return
	}
	line.Transform.Position = origin
	hlr := engine.GetComponent[*HitLineRenderer](line)
	if hlr == nil {
		log.Printf("RaycastDemo: prefab %q has no HitLineRenderer", r.LinePrefab)
		world.Destroy(line)
		return
	}
	hlr.ActivateWithColor(r.LineDuration, origin, point, r.HitLineColor)
}
