package engine

import "testing"

func TestCoroutineRunsFirstStepImmediately(t *testing.T) {
	scene := NewScene("Test")
	steps := 0

	scene.StartCoroutine(nil, func(yield func(YieldInstruction) bool) {
		steps++
		if !yield(WaitForSeconds(1)) {
			return
		}
		steps++
	})

	if steps != 1 {
		t.Errorf("Expected first step to run synchronously, got %d", steps)
	}
	if scene.CoroutineCount() != 1 {
		t.Errorf("Expected 1 suspended coroutine, got %d", scene.CoroutineCount())
	}
}

func TestCoroutineWaitForSeconds(t *testing.T) {
	scene := NewScene("Test")
	resumed := false

	scene.StartCoroutine(nil, func(yield func(YieldInstruction) bool) {
		if !yield(WaitForSeconds(0.5)) {
			return
		}
		resumed = true
	})

	scene.Update(0.3)
	if resumed {
		t.Fatal("Coroutine resumed before its wait elapsed")
	}

	scene.Update(0.3)
	if !resumed {
		t.Fatal("Coroutine did not resume after its wait elapsed")
	}
	if scene.CoroutineCount() != 0 {
		t.Errorf("Finished coroutine should be removed, %d left", scene.CoroutineCount())
	}
}

func TestCoroutineNextFrame(t *testing.T) {
	scene := NewScene("Test")
	frames := 0

	scene.StartCoroutine(nil, func(yield func(YieldInstruction) bool) {
		for range 3 {
			if !yield(NextFrame) {
				return
			}
			frames++
		}
	})

	for range 5 {
		scene.Update(0.016)
	}
	if frames != 3 {
		t.Errorf("Expected 3 resumed frames, got %d", frames)
	}
}

func TestCoroutineWithoutYieldFinishesInline(t *testing.T) {
	scene := NewScene("Test")
	ran := false

	scene.StartCoroutine(nil, func(yield func(YieldInstruction) bool) {
		ran = true
	})

	if !ran || scene.CoroutineCount() != 0 {
		t.Errorf("Expected inline completion, ran=%v count=%d", ran, scene.CoroutineCount())
	}
}

func TestCoroutineStoppedWhenOwnerDestroyed(t *testing.T) {
	scene := NewScene("Test")
	owner := NewGameObject("Owner")
	scene.AddGameObject(owner)
	resumed := false
	cleanedUp := false

	scene.StartCoroutine(owner, func(yield func(YieldInstruction) bool) {
		defer func() { cleanedUp = true }()
		if !yield(WaitForSeconds(1)) {
			return
		}
		resumed = true
	})

	scene.Destroy(owner)
	scene.Update(2)

	if resumed {
		t.Error("Coroutine of a destroyed owner must not resume")
	}
	if !cleanedUp {
		t.Error("Coroutine of a destroyed owner should be stopped")
	}
	if scene.CoroutineCount() != 0 {
		t.Errorf("Expected no coroutines, got %d", scene.CoroutineCount())
	}
}

func TestCoroutineStartedDuringStepRunsNextFrame(t *testing.T) {
	scene := NewScene("Test")
	innerResumed := 0

	scene.StartCoroutine(nil, func(yield func(YieldInstruction) bool) {
		if !yield(NextFrame) {
			return
		}
		scene.StartCoroutine(nil, func(yield func(YieldInstruction) bool) {
			if !yield(NextFrame) {
				return
			}
			innerResumed++
		})
	})

	scene.Update(0.016)
	if innerResumed != 0 {
		t.Fatal("Inner coroutine should not resume in the frame it was started")
	}
	scene.Update(0.016)
	if innerResumed != 1 {
		t.Errorf("Expected inner coroutine to resume once, got %d", innerResumed)
	}
}
