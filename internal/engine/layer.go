package engine

import (
	"fmt"
	"strings"
)

// Built-in layers. Layers 8-31 are free for scenes to name.
const (
	DefaultLayer       = 0
	TransparentFXLayer = 1
	IgnoreRaycastLayer = 2
	WaterLayer         = 4
	UILayer            = 5

	MaxLayers = 32
)

var layerNames = [MaxLayers]string{
	DefaultLayer:       "Default",
	TransparentFXLayer: "TransparentFX",
	IgnoreRaycastLayer: "Ignore Raycast",
	WaterLayer:         "Water",
	UILayer:            "UI",
}

// LayerMask is a bit set of layers. Bit n selects layer n.
type LayerMask uint32

const (
	NothingMask    LayerMask = 0
	EverythingMask LayerMask = ^LayerMask(0)

	// DefaultRaycastLayers is every layer except Ignore Raycast.
	DefaultRaycastLayers = EverythingMask &^ (1 << IgnoreRaycastLayer)
)

// MaskOf builds a mask from layer indices. Out-of-range layers are ignored.
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < MaxLayers {
			m |= 1 << uint(l)
		}
	}
	return m
}

func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= MaxLayers {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// Layers returns the indices of every layer set in the mask.
func (m LayerMask) Layers() []int {
	var out []int
	for i := 0; i < MaxLayers; i++ {
		if m.Contains(i) {
			out = append(out, i)
		}
	}
	return out
}

// SetLayerName names a user layer (8-31).
func SetLayerName(layer int, name string) error {
	if layer < 8 || layer >= MaxLayers {
		return fmt.Errorf("layer %d is not a user layer", layer)
	}
	layerNames[layer] = name
	return nil
}

// LayerName returns the name of a layer, or "" if unnamed.
func LayerName(layer int) string {
	if layer < 0 || layer >= MaxLayers {
		return ""
	}
	return layerNames[layer]
}

// NameToLayer returns the layer index for a name, or -1.
func NameToLayer(name string) int {
	for i, n := range layerNames {
		if n != "" && strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

// MaskFromNames builds a mask from layer names.
func MaskFromNames(names ...string) (LayerMask, error) {
	var m LayerMask
	for _, name := range names {
		l := NameToLayer(name)
		if l < 0 {
			return 0, fmt.Errorf("unknown layer %q", name)
		}
		m |= 1 << uint(l)
	}
	return m, nil
}
