package world

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"raycastdemo/internal/components"
	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	// Layers names user layers, keyed by index ("8" .. "31").
	Layers  map[string]string    `json:"layers,omitempty"`
	Objects []ObjectDef          `json:"objects"`
	Prefabs map[string]ObjectDef `json:"prefabs,omitempty"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      string            `json:"layer,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type lineRendererDef struct {
	Type  string  `json:"type"`
	Color string  `json:"color,omitempty"`
	Width float32 `json:"width,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

func vec(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

// LoadSceneData registers layers and prefabs, then spawns every object.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for key, name := range sf.Layers {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("layer index %q: %w", key, err)
		}
		if err := engine.SetLayerName(idx, name); err != nil {
			return err
		}
	}

	for name, def := range sf.Prefabs {
		w.RegisterPrefab(name, def)
	}

	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return err
		}
		w.SpawnObject(g)
	}

	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec(def.Scale)
	}

	if def.Layer != "" {
		layer := engine.NameToLayer(def.Layer)
		if layer < 0 {
			return nil, fmt.Errorf("object %q: unknown layer %q", def.Name, def.Layer)
		}
		g.Layer = layer
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			continue
		}

		switch header.Type {
		case "BoxCollider":
			loadBoxCollider(g, raw)
		case "SphereCollider":
			loadSphereCollider(g, raw)
		case "LineRenderer":
			loadLineRenderer(g, raw)
		case "Script":
			loadScript(g, raw)
		}
	}
	return g, nil
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	col := components.NewBoxCollider(vec(def.Size))
	col.Offset = vec(def.Offset)
	g.AddComponent(col)
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec(def.Offset)
	g.AddComponent(col)
}

func loadLineRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def lineRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	color := rl.White
	if def.Color != "" {
		if c, err := components.ParseColor(def.Color); err == nil {
			color = c
		}
	}
	lr := components.NewLineRenderer(color)
	if def.Width > 0 {
		lr.Width = def.Width
	}
	g.AddComponent(lr)
}

func loadScript(g *engine.GameObject, raw json.RawMessage) {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	if comp := engine.CreateScript(def.Name, def.Props); comp != nil {
		g.AddComponent(comp)
	}
}

// --- Saving ---

// MarshalScene encodes the scene back to JSON. Runtime-spawned hit lines
// are not saved.
func (w *World) MarshalScene() ([]byte, error) {
	var sf SceneFile

	for i := 8; i < engine.MaxLayers; i++ {
		if name := engine.LayerName(i); name != "" {
			if sf.Layers == nil {
				sf.Layers = make(map[string]string)
			}
			sf.Layers[strconv.Itoa(i)] = name
		}
	}

	if len(w.prefabs) > 0 {
		sf.Prefabs = make(map[string]ObjectDef, len(w.prefabs))
		for name, def := range w.prefabs {
			sf.Prefabs[name] = def
		}
	}

	for _, g := range w.Scene.GameObjects {
		if g.Destroyed() || engine.GetComponent[*components.HitLineRenderer](g) != nil {
			continue
		}
		sf.Objects = append(sf.Objects, objectDefFor(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func (w *World) SaveScene(path string) error {
	data, err := w.MarshalScene()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func objectDefFor(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     slices.Clone(g.Tags),
		Layer:    engine.LayerName(g.Layer),
		Position: arr(g.Transform.Position),
		Rotation: arr(g.Transform.Rotation),
		Scale:    arr(g.Transform.Scale),
	}
	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			def.Components = append(def.Components, raw)
		}
	}
	return def
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr(comp.Size),
			Offset: arr(comp.Offset),
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Offset: arr(comp.Offset),
		}

	case *components.LineRenderer:
		def = lineRendererDef{
			Type:  "LineRenderer",
			Color: components.ColorName(comp.StartColor),
			Width: comp.Width,
		}

	default:
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
