package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}

	if scene.FindByUID(obj.UID) != obj {
		t.Error("FindByUID failed")
	}

	if scene.FindByUID(99999999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != obj2 {
		t.Errorf("Wrong GameObjects after removal: %v", scene.GameObjects)
	}

	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneRemoveGameObjectStopsCoroutines(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Line")
	counter := &destroyRecorder{}
	obj.AddComponent(counter)
	scene.AddGameObject(obj)

	resumed := false
	scene.StartCoroutine(obj, func(yield func(YieldInstruction) bool) {
		if !yield(WaitForSeconds(1)) {
			return
		}
		resumed = true
	})

	scene.RemoveGameObject(obj)

	if !obj.Destroyed() {
		t.Error("Removed GameObject should report Destroyed")
	}
	if counter.destroyed != 1 {
		t.Errorf("Expected OnDestroy once, got %d", counter.destroyed)
	}
	if scene.CoroutineCount() != 0 {
		t.Errorf("Expected coroutine to be stopped, %d left", scene.CoroutineCount())
	}

	scene.Update(2)
	if resumed {
		t.Error("Coroutine resumed after its owner was removed")
	}
	if counter.destroyed != 1 {
		t.Errorf("OnDestroy ran again after removal: %d calls", counter.destroyed)
	}
}

func TestSceneRemoveGameObjectAfterDestroy(t *testing.T) {
	scene := NewScene("Test")
	queued := NewGameObject("Queued")
	other := NewGameObject("Other")
	counter := &destroyRecorder{}
	queued.AddComponent(counter)
	scene.AddGameObject(queued)
	scene.AddGameObject(other)

	scene.Destroy(other)
	scene.Destroy(queued)
	scene.RemoveGameObject(queued)

	if counter.destroyed != 1 {
		t.Errorf("Expected OnDestroy once, got %d", counter.destroyed)
	}
	if scene.FindByUID(other.UID) != other {
		t.Error("Unrelated pending destroy should wait for the end of the frame")
	}

	scene.FlushDestroyed()
	if counter.destroyed != 1 {
		t.Errorf("OnDestroy ran again on flush: %d calls", counter.destroyed)
	}
	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected empty scene, got %d objects", len(scene.GameObjects))
	}
}

func TestSceneFindByNameAndTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Enemy1")
	obj2 := NewGameObject("Enemy2")
	obj3 := NewGameObject("Player")

	obj1.Tags = []string{"enemy", "ai"}
	obj2.Tags = []string{"enemy"}
	obj3.Tags = []string{"player"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if scene.FindByName("Player") != obj3 {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
	if enemies := scene.FindByTag("enemy"); len(enemies) != 2 {
		t.Errorf("Expected 2 enemies, got %d", len(enemies))
	}
	if notFound := scene.FindByTag("nonexistent"); len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj)

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

type destroyRecorder struct {
	BaseComponent
	destroyed int
}

func (d *destroyRecorder) OnDestroy() { d.destroyed++ }

func TestSceneDestroyIsDeferred(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Doomed")
	rec := &destroyRecorder{}
	obj.AddComponent(rec)
	scene.AddGameObject(obj)

	scene.Destroy(obj)

	if !obj.Destroyed() {
		t.Error("Destroyed flag should be set immediately")
	}
	if scene.FindByUID(obj.UID) != obj {
		t.Error("Object should remain in the scene until the end of the frame")
	}

	scene.Update(0.016)

	if scene.FindByUID(obj.UID) != nil || len(scene.GameObjects) != 0 {
		t.Error("Object should be removed after Update")
	}
	if rec.destroyed != 1 {
		t.Errorf("Expected OnDestroy once, got %d", rec.destroyed)
	}

	scene.Destroy(obj)
	scene.Update(0.016)
	if rec.destroyed != 1 {
		t.Errorf("Second Destroy should be a no-op, got %d calls", rec.destroyed)
	}
}

func TestSceneDestroyCascadesToChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)
	scene.AddGameObject(parent)
	scene.AddGameObject(child)

	scene.Destroy(parent)
	scene.FlushDestroyed()

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected parent and child removed, got %d objects", len(scene.GameObjects))
	}
}

func TestSceneUpdateStartsNewObjects(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Late")
	counter := &counterComponent{}
	obj.AddComponent(counter)
	scene.AddGameObject(obj)

	scene.Update(0.1)
	scene.Update(0.1)

	if counter.starts != 1 {
		t.Errorf("Expected one Start, got %d", counter.starts)
	}
	if counter.updates != 2 {
		t.Errorf("Expected two Updates, got %d", counter.updates)
	}
}
