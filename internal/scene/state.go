package scene

import "github.com/san-kum/teardown/internal/parts"

// State is the whole of the viewer's mutable interaction state.
// The zero value is collapsed with nothing hovered or selected.
type State struct {
	Exploded bool
	Hovered  parts.ID
	Selected parts.ID
}

// LabelVisible reports whether the label for id should be drawn this frame.
func (s State) LabelVisible(id parts.ID) bool {
	return s.Exploded || (id.Valid() && s.Hovered == id)
}

// Controller owns a State and applies input transitions to it.
// Unknown part ids are ignored rather than rejected.
type Controller struct {
	state State
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) State() State { return c.state }

// ToggleExplode flips between assembled and exploded. Hover and selection
// are left alone.
func (c *Controller) ToggleExplode() {
	c.state.Exploded = !c.state.Exploded
}

// SetHovered replaces the hovered part. parts.None clears it.
func (c *Controller) SetHovered(id parts.ID) {
	if id != parts.None && !id.Valid() {
		return
	}
	c.state.Hovered = id
}

func (c *Controller) ClearHover() { c.state.Hovered = parts.None }

// HoverName hovers a part by name; an empty name clears the hover.
func (c *Controller) HoverName(name string) {
	if name == "" {
		c.ClearHover()
		return
	}
	if id, ok := parts.Lookup(name); ok {
		c.SetHovered(id)
	}
}

// SelectPart replaces the selection. Selecting the already selected part
// keeps it selected; there is no deselect.
func (c *Controller) SelectPart(id parts.ID) {
	if !id.Valid() {
		return
	}
	c.state.Selected = id
}

func (c *Controller) SelectName(name string) {
	if id, ok := parts.Lookup(name); ok {
		c.SelectPart(id)
	}
}
