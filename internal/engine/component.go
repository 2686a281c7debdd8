package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// DestroyHandler is implemented by components that release resources when
// their GameObject is removed from the scene.
type DestroyHandler interface {
	OnDestroy()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// World returns the WorldAccess of the owning scene, or nil when the
// component is not attached to a scene.
func (b *BaseComponent) World() WorldAccess {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return nil
	}
	return b.gameObject.Scene.World
}

// StartCoroutine runs co on the owning scene's scheduler.
// Returns false when the component is not in a scene.
func (b *BaseComponent) StartCoroutine(co Coroutine) bool {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return false
	}
	b.gameObject.Scene.StartCoroutine(b.gameObject, co)
	return true
}
