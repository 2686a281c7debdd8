// Benchmark comparing batched raycast commands against sequential casts.
//
// Profiling:
// go build ./cmd/raycast_bench
// ./raycast_bench -profile cpu
// go tool pprof -http=":8000" ./raycast_bench cpu.pprof
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"raycastdemo/internal/components"
	"raycastdemo/internal/engine"
	"raycastdemo/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit code so deferred profile writes happen first.
func run(args []string) int {
	fs := flag.NewFlagSet("raycast_bench", flag.ContinueOnError)
	casts := fs.Int("casts", 1000, "rays per iteration")
	iterations := fs.Int("iterations", 50, "timed iterations per path")
	colliders := fs.Int("colliders", 500, "colliders in the generated scene")
	perJob := fs.Int("per-job", 10, "minimum commands per batch job")
	seed := fs.Uint64("seed", 42, "seed for the generated scene")
	mode := fs.String("profile", "", "cpu, mem or empty")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch *mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *mode)
		return 2
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	w, demo := buildWorld(rng, *colliders)
	demo.MinCommandsPerJob = *perJob
	demo.CastCount = *casts
	demo.MinDistance = 5
	demo.MaxDistance = 60
	demo.RandomizeCasts()

	fmt.Printf("%d colliders, %d casts, %d iterations\n\n", *colliders, len(demo.CastDirections), *iterations)

	// Warm up
	batch := demo.DoRaycastCommands()
	naive := demo.DoRaycastOld()
	w.Debug.Clear()

	if mismatches := compare(batch, naive); mismatches > 0 {
		fmt.Printf("MISMATCH: %d of %d casts differ between paths\n", mismatches, len(batch))
		return 1
	}

	batchTime, batchHits := timePath(w, *iterations, demo.DoRaycastCommands)
	naiveTime, naiveHits := timePath(w, *iterations, demo.DoRaycastOld)

	speedup := float64(naiveTime) / float64(batchTime)
	fmt.Printf("commands %10v (%5d hits)\n", batchTime.Round(time.Microsecond), batchHits)
	fmt.Printf("old      %10v (%5d hits)\n", naiveTime.Round(time.Microsecond), naiveHits)
	fmt.Printf("%.1fx speedup\n", speedup)
	return 0
}

func buildWorld(rng *rand.Rand, count int) (*world.World, *components.RaycastDemo) {
	w := world.New()

	caster := engine.NewGameObject("Caster")
	demo := components.NewRaycastDemo()
	// Debug lines keep the timed loop free of prefab spawns.
	demo.UseDebugLine = true
	demo.LineDuration = 0
	caster.AddComponent(demo)
	w.SpawnObject(caster)

	// Spawn in a ring around the caster on the XY plane
	for i := range count {
		g := engine.NewGameObject(fmt.Sprintf("Collider%d", i))
		angle := rng.Float64() * 2 * math.Pi
		dist := 5 + rng.Float64()*50
		g.Transform.Position = rl.Vector3{
			X: float32(math.Cos(angle) * dist),
			Y: float32(math.Sin(angle) * dist),
			Z: float32(rng.Float64()*2 - 1),
		}
		if i%2 == 0 {
			size := 0.5 + rng.Float32()*1.5
			g.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
		} else {
			g.AddComponent(components.NewSphereCollider(0.25 + rng.Float32()))
		}
		w.SpawnObject(g)
	}

	w.Scene.Start()
	return w, demo
}

func timePath(w *world.World, iterations int, cast func() []components.CastResult) (time.Duration, int) {
	var hits int
	start := time.Now()
	for range iterations {
		hits = 0
		for _, r := range cast() {
			if r.Hit {
				hits++
			}
		}
		w.Debug.Clear()
	}
	return time.Since(start) / time.Duration(max(iterations, 1)), hits
}

func compare(a, b []components.CastResult) int {
	if len(a) != len(b) {
		return max(len(a), len(b))
	}
	var mismatches int
	for i := range a {
		if a[i].Hit != b[i].Hit || a[i].GameObject != b[i].GameObject {
			mismatches++
			continue
		}
		if a[i].Hit && rl.Vector3Distance(a[i].Point, b[i].Point) > 1e-4 {
			mismatches++
		}
	}
	return mismatches
}
