package physics

import (
	"fmt"
	"runtime"

	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/sync/errgroup"
)

// Querier answers single raycasts. PhysicsWorld and the world's
// engine.WorldAccess both satisfy it.
type Querier interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (RaycastHit, bool)
}

// RaycastCommand describes one cast in a batch.
type RaycastCommand struct {
	From      rl.Vector3
	Direction rl.Vector3
	Distance  float32
	LayerMask engine.LayerMask
	// MaxHits is carried for API parity but ScheduleBatch only ever writes
	// the closest hit of each command.
	MaxHits int
}

func NewRaycastCommand(from, direction rl.Vector3, distance float32, mask engine.LayerMask, maxHits int) RaycastCommand {
	if maxHits < 1 {
		maxHits = 1
	}
	return RaycastCommand{
		From:      from,
		Direction: direction,
		Distance:  distance,
		LayerMask: mask,
		MaxHits:   maxHits,
	}
}

// JobHandle tracks a scheduled batch.
type JobHandle struct {
	done <-chan struct{}
}

// Complete blocks until every job in the batch has finished.
func (h JobHandle) Complete() {
	if h.done != nil {
		<-h.done
	}
}

func (h JobHandle) IsCompleted() bool {
	if h.done == nil {
		return true
	}
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// ScheduleBatch runs every command against q on a bounded worker pool.
// Jobs hold minCommandsPerJob commands (the last one may hold fewer).
// The hit for commands[i] is written to results[i]; a miss leaves the zero
// RaycastHit. results must be at least as long as commands. Neither buffer
// may be touched or disposed until the returned handle completes.
func ScheduleBatch(q Querier, commands *NativeArray[RaycastCommand], results *NativeArray[RaycastHit], minCommandsPerJob int) (JobHandle, error) {
	n := commands.Len()
	if results.Len() < n {
		return JobHandle{}, fmt.Errorf("results length %d is smaller than commands length %d", results.Len(), n)
	}

	cmds := commands.Slice()
	out := results.Slice()
	ranges := jobRanges(n, minCommandsPerJob)

	done := make(chan struct{})
	go func() {
		defer close(done)
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, r := range ranges {
			g.Go(func() error {
				for i := r.start; i < r.end; i++ {
					c := cmds[i]
					hit, ok := q.Raycast(c.From, c.Direction, c.Distance, c.LayerMask)
					if !ok {
						hit = RaycastHit{}
					}
					out[i] = hit
				}
				return nil
			})
		}
		_ = g.Wait()
	}()

	return JobHandle{done: done}, nil
}

type jobRange struct{ start, end int }

// jobRanges splits [0, n) into consecutive ranges of batchSize.
func jobRanges(n, batchSize int) []jobRange {
	if batchSize < 1 {
		batchSize = 1
	}
	ranges := make([]jobRange, 0, (n+batchSize-1)/batchSize)
	for start := 0; start < n; start += batchSize {
		end := min(start+batchSize, n)
		ranges = append(ranges, jobRange{start: start, end: end})
	}
	return ranges
}
