package ui

// Base holds the area a component was laid out in. Embed it in component
// models that need their size outside of SetSize.
type Base struct {
	width, height int
}

// SetSize records the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = max(width, 0), max(height, 0)
}

// Width returns the component width.
func (b Base) Width() int { return b.width }

// Height returns the component height.
func (b Base) Height() int { return b.height }

// HasSize reports whether the component has a usable area.
func (b Base) HasSize() bool {
	return b.width > 0 && b.height > 0
}
