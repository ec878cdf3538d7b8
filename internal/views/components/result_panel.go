package components

import (
	"fmt"
	"image/color"

	"pokedex/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Placeholder texts shown in the sprite area when no image can be displayed.
const (
	PlaceholderNoImage   = "No hay imagen disponible."
	PlaceholderLoadError = "Error al cargar la imagen."
)

// placeholderColor matches the original red warning text.
var placeholderColor = color.NRGBA{R: 200, A: 255}

// InfoLines renders the four attribute lines shown beside the sprite.
// A missing second type reads as "N/A".
func InfoLines(record *models.Record) [4]string {
	return [4]string{
		fmt.Sprintf("ID: %d", record.ID),
		fmt.Sprintf("Nombre: %s", record.Name),
		fmt.Sprintf("Tipo 1: %s", record.Type1),
		fmt.Sprintf("Tipo 2: %s", record.DisplayType2()),
	}
}

// ResultPanel displays one looked-up record: attribute lines, sprite or
// placeholder, and the stat chart
type ResultPanel struct {
	container *fyne.Container
}

// NewResultPanel creates a new, empty result panel component
func NewResultPanel() *ResultPanel {
	rp := &ResultPanel{}
	rp.buildLayout()
	return rp
}

// buildLayout constructs the initially empty result area
func (rp *ResultPanel) buildLayout() {
	rp.container = container.NewVBox()
}

// Clear removes everything from the result area
func (rp *ResultPanel) Clear() {
	fyne.Do(func() {
		rp.container.Objects = nil
		rp.container.Refresh()
	})
}

// ShowResult tears the result area down and rebuilds every widget for the
// given content. Earlier results never leak into the new presentation.
func (rp *ResultPanel) ShowResult(content *models.ResultContent) {
	fyne.Do(func() {
		lines := InfoLines(content.Record)
		info := container.NewVBox(
			widget.NewLabel(lines[0]),
			widget.NewLabel(lines[1]),
			widget.NewLabel(lines[2]),
			widget.NewLabel(lines[3]),
		)

		top := container.NewHBox(info, rp.buildSpriteObject(content))

		objects := []fyne.CanvasObject{top}
		if content.Chart != nil {
			chartImage := canvas.NewImageFromImage(content.Chart)
			chartImage.FillMode = canvas.ImageFillContain
			chartImage.ScaleMode = canvas.ImageScaleSmooth
			bounds := content.Chart.Bounds()
			chartImage.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
			objects = append(objects, container.NewCenter(chartImage))
		}

		rp.container.Objects = objects
		rp.container.Refresh()
	})
}

// buildSpriteObject returns the sprite image, or the content's placeholder
// text when no image is available.
func (rp *ResultPanel) buildSpriteObject(content *models.ResultContent) fyne.CanvasObject {
	if content.Sprite == nil {
		text := canvas.NewText(content.SpritePlaceholder, placeholderColor)
		return container.NewCenter(text)
	}

	spriteImage := canvas.NewImageFromImage(content.Sprite)
	spriteImage.FillMode = canvas.ImageFillContain
	spriteImage.ScaleMode = canvas.ImageScaleSmooth
	bounds := content.Sprite.Bounds()
	spriteImage.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	return container.NewCenter(spriteImage)
}

// IsEmpty reports whether the result area is showing anything
func (rp *ResultPanel) IsEmpty() bool {
	return len(rp.container.Objects) == 0
}

// GetContainer returns the result panel container
func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}

// Refresh refreshes the result panel display
func (rp *ResultPanel) Refresh() {
	fyne.Do(func() {
		rp.container.Refresh()
	})
}
