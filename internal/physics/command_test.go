package physics

import (
	"testing"

	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestJobRanges(t *testing.T) {
	ranges := jobRanges(25, 10)
	if len(ranges) != 3 {
		t.Fatalf("Expected 3 jobs, got %d", len(ranges))
	}
	if ranges[2] != (jobRange{start: 20, end: 25}) {
		t.Errorf("Unexpected last job %v", ranges[2])
	}

	if got := jobRanges(3, 0); len(got) != 3 {
		t.Errorf("Batch size below 1 should fall back to 1, got %d jobs", len(got))
	}
	if got := jobRanges(0, 10); len(got) != 0 {
		t.Errorf("Empty input should produce no jobs, got %d", len(got))
	}
}

func TestNewRaycastCommandClampsMaxHits(t *testing.T) {
	c := NewRaycastCommand(rl.Vector3{}, rl.Vector3{X: 1}, 5, engine.EverythingMask, 0)
	if c.MaxHits != 1 {
		t.Errorf("Expected MaxHits 1, got %d", c.MaxHits)
	}
}

func TestScheduleBatchMatchesSequential(t *testing.T) {
	w := NewPhysicsWorld()
	for i := range 8 {
		w.AddObject(newBox("Box", rl.Vector3{X: float32(3 + i*2), Y: float32(i % 3)}, engine.DefaultLayer))
	}

	dirs := []rl.Vector3{
		{X: 1}, {X: 1, Y: 0.1}, {X: -1}, {Y: 1}, {X: 1, Y: 0.3}, {X: 1, Y: -0.2}, {}, {X: 1, Z: 1},
	}
	n := len(dirs) * 4

	commands := NewNativeArray[RaycastCommand](n, AllocatorTemp)
	defer commands.Dispose()
	results := NewNativeArray[RaycastHit](n, AllocatorTemp)
	defer results.Dispose()

	for i := range n {
		commands.Set(i, NewRaycastCommand(rl.Vector3{}, dirs[i%len(dirs)], float32(5+i), engine.EverythingMask, 1))
	}

	handle, err := ScheduleBatch(w, commands, results, 3)
	if err != nil {
		t.Fatalf("ScheduleBatch: %v", err)
	}
	handle.Complete()
	if !handle.IsCompleted() {
		t.Error("Handle should report completion after Complete")
	}

	for i := range n {
		c := commands.At(i)
		want, ok := w.Raycast(c.From, c.Direction, c.Distance, c.LayerMask)
		got := results.At(i)
		if got.Hit() != ok {
			t.Errorf("Command %d: batch hit=%v sequential hit=%v", i, got.Hit(), ok)
			continue
		}
		if ok && (got.GameObject != want.GameObject || got.Point != want.Point) {
			t.Errorf("Command %d: batch %v != sequential %v", i, got, want)
		}
	}
}

func TestScheduleBatchIgnoresMaxHits(t *testing.T) {
	w := NewPhysicsWorld()
	w.AddObject(newBox("First", rl.Vector3{X: 2}, engine.DefaultLayer))
	w.AddObject(newBox("Second", rl.Vector3{X: 4}, engine.DefaultLayer))

	const maxHits = 3
	commands := NewNativeArray[RaycastCommand](2, AllocatorTemp)
	defer commands.Dispose()
	results := NewNativeArray[RaycastHit](2*maxHits, AllocatorTemp)
	defer results.Dispose()

	commands.Set(0, NewRaycastCommand(rl.Vector3{}, rl.Vector3{X: 1}, 10, engine.EverythingMask, maxHits))
	commands.Set(1, NewRaycastCommand(rl.Vector3{}, rl.Vector3{X: -1}, 10, engine.EverythingMask, maxHits))

	handle, err := ScheduleBatch(w, commands, results, 1)
	if err != nil {
		t.Fatalf("ScheduleBatch: %v", err)
	}
	handle.Complete()

	if !results.At(0).Hit() || results.At(0).GameObject.Name != "First" {
		t.Errorf("Expected closest hit in slot 0, got %v", results.At(0))
	}
	for i := 1; i < results.Len(); i++ {
		if results.At(i).Hit() {
			t.Errorf("Slot %d should stay empty, got %v", i, results.At(i))
		}
	}
}

func TestScheduleBatchRejectsShortResults(t *testing.T) {
	commands := NewNativeArray[RaycastCommand](4, AllocatorTemp)
	defer commands.Dispose()
	results := NewNativeArray[RaycastHit](2, AllocatorTemp)
	defer results.Dispose()

	if _, err := ScheduleBatch(NewPhysicsWorld(), commands, results, 1); err == nil {
		t.Error("Expected an error for an undersized results buffer")
	}
}

func TestZeroJobHandle(t *testing.T) {
	var h JobHandle
	h.Complete()
	if !h.IsCompleted() {
		t.Error("Zero handle should be complete")
	}
}
