package engine

import (
	"fmt"
	"slices"
)

// ScriptFactory creates a Component from JSON props.
type ScriptFactory func(props Props) Component

// ScriptSerializer converts a Component back to props for JSON saving.
// It returns nil for components it does not own.
type ScriptSerializer func(c Component) map[string]any

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
}

var scriptRegistry = map[string]scriptEntry{}

// RegisterScript registers a named script with a factory and optional serializer.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = scriptEntry{factory: factory, serializer: serializer}
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props map[string]any) Component {
	entry, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	return entry.factory(Props(props))
}

// SerializeScript tries to serialize a component by checking all registered scripts.
// Returns (name, props, true) if found, ("", nil, false) otherwise.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for _, name := range RegisteredScripts() {
		entry := scriptRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredScripts returns a sorted list of all registered script names.
func RegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Props wraps decoded JSON script properties. Numbers arrive as float64.
type Props map[string]any

func (p Props) Float(key string, fallback float32) float32 {
	if v, ok := p[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func (p Props) Int(key string, fallback int) int {
	if v, ok := p[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p Props) String(key, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Floats decodes a JSON number array. Non-numeric entries are skipped.
func (p Props) Floats(key string) []float32 {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]float32, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(float64); ok {
			out = append(out, float32(f))
		}
	}
	return out
}

// Vectors decodes an array of [x, y, z] arrays. Short entries are zero-padded.
func (p Props) Vectors(key string) [][3]float32 {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([][3]float32, 0, len(raw))
	for _, v := range raw {
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		var vec [3]float32
		for i := 0; i < len(arr) && i < 3; i++ {
			if f, ok := arr[i].(float64); ok {
				vec[i] = float32(f)
			}
		}
		out = append(out, vec)
	}
	return out
}

// Strings decodes a JSON string array.
func (p Props) Strings(key string) []string {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
