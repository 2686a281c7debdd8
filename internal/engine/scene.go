package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess

	uidMap     map[uint64]*GameObject
	coroutines []*coroutine
	destroyQ   []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject destroys g and its children immediately instead of at
// the end of the frame. Other pending destroys are left queued.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if g == nil {
		return
	}
	s.Destroy(g)

	var rest []*GameObject
	var now []*GameObject
	for _, q := range s.destroyQ {
		if q == g || q.isDescendantOf(g) {
			now = append(now, q)
			continue
		}
		rest = append(rest, q)
	}
	s.destroyQ = rest
	for _, q := range now {
		s.teardown(q)
	}
}

// Destroy marks g for removal at the end of the current frame.
// Destroying an object twice is a no-op.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	g.destroyed = true
	for _, child := range g.Children {
		s.Destroy(child)
	}
	s.destroyQ = append(s.destroyQ, g)
}

// FlushDestroyed removes every object queued by Destroy.
func (s *Scene) FlushDestroyed() {
	queue := s.destroyQ
	s.destroyQ = nil
	for _, g := range queue {
		s.teardown(g)
	}
}

// teardown runs OnDestroy, stops g's coroutines and unlinks it.
func (s *Scene) teardown(g *GameObject) {
	for _, c := range g.components {
		if h, ok := c.(DestroyHandler); ok {
			h.OnDestroy()
		}
	}
	s.stopCoroutines(g)
	if g.Parent != nil && !g.Parent.destroyed {
		g.Parent.RemoveChild(g)
	}
	s.removeOne(g)
}

func (s *Scene) removeOne(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
}

// FindByUID returns the GameObject with the given UID, or nil.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update runs one frame: components, then coroutines, then pending destroys.
func (s *Scene) Update(deltaTime float32) {
	objects := make([]*GameObject, len(s.GameObjects))
	copy(objects, s.GameObjects)
	for _, g := range objects {
		if g.destroyed {
			continue
		}
		g.Start()
		g.Update(deltaTime)
	}
	s.stepCoroutines(deltaTime)
	s.FlushDestroyed()
}
