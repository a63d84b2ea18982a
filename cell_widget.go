package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Colors for the marks and the cell backgrounds. X is blue and O is
// red, matching the classic presentation.
var (
	colorPlayerMark   = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	colorComputerMark = color.NRGBA{R: 234, G: 67, B: 53, A: 255}
	colorCellIdle     = color.NRGBA{R: 55, G: 55, B: 55, A: 255}
	colorCellWinning  = color.NRGBA{R: 46, G: 105, B: 60, A: 255}
)

// boardCell is a custom widget for one square of the grid: it draws
// the claimed mark and reports taps back to the UI.
type boardCell struct {
	widget.BaseWidget
	mark     Cell
	winning  bool
	minSize  fyne.Size
	onTapped func()
}

// newBoardCell creates a cell widget with the given tap handler.
func newBoardCell(onTapped func()) *boardCell {
	c := &boardCell{
		minSize:  fyne.NewSize(110, 110),
		onTapped: onTapped,
	}
	c.ExtendBaseWidget(c) // This is crucial for it to be treated as a widget.
	return c
}

// CreateRenderer is a mandatory part of the Widget interface.
func (c *boardCell) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(colorCellIdle)
	background.CornerRadius = 6
	text := canvas.NewText(c.mark.String(), colorPlayerMark)
	text.TextStyle = fyne.TextStyle{Bold: true}
	return &boardCellRenderer{
		background: background,
		text:       text,
		widget:     c,
	}
}

// Tapped is called when the user taps the cell.
func (c *boardCell) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

// --- Renderer for the custom widget ---

type boardCellRenderer struct {
	background *canvas.Rectangle
	text       *canvas.Text
	widget     *boardCell
}

func (r *boardCellRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	// Scale the mark with the cell and keep it centered.
	r.text.TextSize = size.Height * 0.55
	textSize := fyne.MeasureText(r.text.Text, r.text.TextSize, r.text.TextStyle)
	r.text.Resize(textSize)
	r.text.Move(fyne.NewPos((size.Width-textSize.Width)/2, (size.Height-textSize.Height)/2))
}

func (r *boardCellRenderer) MinSize() fyne.Size {
	return r.widget.minSize
}

func (r *boardCellRenderer) Refresh() {
	r.text.Text = r.widget.mark.String()
	switch r.widget.mark {
	case ComputerMark:
		r.text.Color = colorComputerMark
	default:
		r.text.Color = colorPlayerMark
	}
	if r.widget.winning {
		r.background.FillColor = colorCellWinning
	} else {
		r.background.FillColor = colorCellIdle
	}
	// Re-center after the text change.
	r.Layout(r.widget.Size())
	r.background.Refresh()
	r.text.Refresh()
	canvas.Refresh(r.widget) // Extra refresh to ensure it updates.
}

func (r *boardCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.text}
}

func (r *boardCellRenderer) Destroy() {}
