package main

import "fyne.io/fyne/v2"

// minSizeLayout is a custom layout that enforces a minimum size on its
// content. Used for fixed-size spacers around the board and to stop
// the difficulty selector from shrinking below its widest label.
type minSizeLayout struct {
	min fyne.Size
}

// Layout resizes the content to fill the container.
func (m *minSizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
	}
}

// MinSize returns the enforced minimum size.
func (m *minSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return m.min
}
