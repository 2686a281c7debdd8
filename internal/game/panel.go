package game

import (
	"strconv"

	"raycastdemo/internal/components"
	"raycastdemo/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent        = rl.NewColor(108, 99, 255, 255) // #6c63ff
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

const (
	panelX      = 10
	panelY      = 100
	panelWidth  = 240
	rowHeight   = 28
	rowSpacing  = 6
	textBoxSize = 32
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// textField is a text box that commits its text when editing ends.
// While idle it mirrors the value it edits.
type textField struct {
	label   string
	text    string
	editing bool
	current func() string
	changed *engine.EventWithArg[string]
}

// toggle flips edit mode. Leaving edit mode fires changed and then reloads
// the text, so rejected input snaps back to the kept value.
func (f *textField) toggle() {
	f.editing = !f.editing
	if f.editing {
		return
	}
	f.changed.Invoke(f.text)
	f.text = f.current()
}

func (f *textField) refresh() {
	if !f.editing {
		f.text = f.current()
	}
}

type panel struct {
	demo   *components.RaycastDemo
	fields []*textField
	bounds rl.Rectangle
}

func newPanel(demo *components.RaycastDemo) *panel {
	return &panel{demo: demo}
}

func (p *panel) bind(c *Controls) {
	if p.fields != nil {
		return
	}
	p.fields = []*textField{
		{
			label:   "Cast Count",
			current: func() string { return strconv.Itoa(p.demo.CastCount) },
			changed: &c.CastCountChanged,
		},
		{
			label:   "Min Distance",
			current: func() string { return formatFloat(p.demo.MinDistance) },
			changed: &c.MinDistanceChanged,
		},
		{
			label:   "Max Distance",
			current: func() string { return formatFloat(p.demo.MaxDistance) },
			changed: &c.MaxDistanceChanged,
		},
	}
	for _, f := range p.fields {
		f.refresh()
	}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Editing reports whether a text box has keyboard focus.
func (p *panel) Editing() bool {
	for _, f := range p.fields {
		if f.editing {
			return true
		}
	}
	return false
}

// Hovered reports whether the mouse is over the panel.
func (p *panel) Hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), p.bounds)
}

func (p *panel) Draw(c *Controls) {
	p.bind(c)

	rows := len(p.fields) + 4
	height := float32(rows*(rowHeight+rowSpacing) + 2*rowSpacing + rowHeight)
	p.bounds = rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: height}

	rl.DrawRectangleRec(p.bounds, colorBgPanel)
	gui.GroupBox(p.bounds, "Raycast Demo")

	x := float32(panelX + 10)
	y := float32(panelY + rowHeight)
	labelW := float32(100)
	boxW := float32(panelWidth - 30 - labelW)

	for _, f := range p.fields {
		f.refresh()
		gui.Label(rl.Rectangle{X: x, Y: y, Width: labelW, Height: rowHeight}, f.label)
		if gui.TextBox(rl.Rectangle{X: x + labelW + 10, Y: y, Width: boxW, Height: rowHeight}, &f.text, textBoxSize, f.editing) {
			f.toggle()
		}
		y += rowHeight + rowSpacing
	}

	buttonW := float32(panelWidth - 20)
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: rowHeight}, "Randomize") {
		c.Randomize.Invoke()
	}
	y += rowHeight + rowSpacing
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: rowHeight}, "Raycast Commands") {
		c.RaycastCommands.Invoke()
	}
	y += rowHeight + rowSpacing
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: rowHeight}, "Raycast Old") {
		c.RaycastOld.Invoke()
	}
	y += rowHeight + rowSpacing

	debugLine := gui.CheckBox(rl.Rectangle{X: x, Y: y + 6, Width: 16, Height: 16}, "Use Debug Line", p.demo.UseDebugLine)
	if debugLine != p.demo.UseDebugLine {
		c.DebugLineToggled.Invoke(debugLine)
	}
}
