package components

import (
	"log"

	"raycastdemo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("RaycastDemo", raycastDemoFactory, raycastDemoSerializer)
	engine.RegisterScript("HitLineRenderer", hitLineFactory, hitLineSerializer)
}

func raycastDemoFactory(props engine.Props) engine.Component {
	d := NewRaycastDemo()
	d.LinePrefab = props.String("linePrefab", d.LinePrefab)
	d.MaxHits = props.Int("maxHits", d.MaxHits)
	d.MinCommandsPerJob = props.Int("minCommandsPerJob", d.MinCommandsPerJob)
	d.UseDebugLine = props.Bool("useDebugLine", d.UseDebugLine)
	d.LineDuration = props.Float("lineDuration", d.LineDuration)
	d.CastCount = props.Int("castCount", d.CastCount)
	d.MinDistance = props.Float("minDistance", d.MinDistance)
	d.MaxDistance = props.Float("maxDistance", d.MaxDistance)

	if name := props.String("hitLineColor", ""); name != "" {
		if c, err := ParseColor(name); err == nil {
			d.HitLineColor = c
		} else {
			log.Printf("RaycastDemo: %v", err)
		}
	}
	if names := props.Strings("hitLayers"); names != nil {
		if mask, err := engine.MaskFromNames(names...); err == nil {
			d.HitLayers = mask
		} else {
			log.Printf("RaycastDemo: %v", err)
		}
	}
	for _, v := range props.Vectors("castDirections") {
		d.CastDirections = append(d.CastDirections, rl.Vector3{X: v[0], Y: v[1], Z: v[2]})
	}
	d.CastDistances = props.Floats("castDistances")
	return d
}

func raycastDemoSerializer(c engine.Component) map[string]any {
	d, ok := c.(*RaycastDemo)
	if !ok {
		return nil
	}
	layers := make([]string, 0)
	for _, l := range d.HitLayers.Layers() {
		if name := engine.LayerName(l); name != "" {
			layers = append(layers, name)
		}
	}
	dirs := make([][3]float32, len(d.CastDirections))
	for i, v := range d.CastDirections {
		dirs[i] = [3]float32{v.X, v.Y, v.Z}
	}
	return map[string]any{
		"linePrefab":        d.LinePrefab,
		"castDirections":    dirs,
		"castDistances":     d.CastDistances,
		"maxHits":           d.MaxHits,
		"hitLayers":         layers,
		"minCommandsPerJob": d.MinCommandsPerJob,
		"useDebugLine":      d.UseDebugLine,
		"hitLineColor":      ColorName(d.HitLineColor),
		"lineDuration":      d.LineDuration,
		"castCount":         d.CastCount,
		"minDistance":       d.MinDistance,
		"maxDistance":       d.MaxDistance,
	}
}

func hitLineFactory(props engine.Props) engine.Component {
	h := NewHitLineRenderer()
	h.Duration = props.Float("duration", h.Duration)
	return h
}

func hitLineSerializer(c engine.Component) map[string]any {
	h, ok := c.(*HitLineRenderer)
	if !ok {
		return nil
	}
	return map[string]any{"duration": h.Duration}
}
