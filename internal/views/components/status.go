package components

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and store information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	storeInfo   *widget.Label
	resultInfo  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Listo")
	sb.storeInfo = widget.NewLabel("Base de datos: --")
	sb.resultInfo = widget.NewLabel("Sin resultado")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.storeInfo,
		widget.NewSeparator(),
		sb.resultInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetStoreInfo shows which database file lookups run against
func (sb *StatusBar) SetStoreInfo(path string) {
	fyne.Do(func() {
		sb.storeInfo.SetText(fmt.Sprintf("Base de datos: %s", filepath.Base(path)))
	})
}

// SetResultInfo shows which record the result area presents
func (sb *StatusBar) SetResultInfo(id int64, name string) {
	fyne.Do(func() {
		sb.resultInfo.SetText(fmt.Sprintf("Mostrando: %s (ID %d)", name, id))
	})
}

// Reset resets the status bar to its initial state
func (sb *StatusBar) Reset() {
	fyne.Do(func() {
		sb.statusLabel.SetText("Listo")
		sb.storeInfo.SetText("Base de datos: --")
		sb.resultInfo.SetText("Sin resultado")
	})
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// Refresh refreshes the status bar display
func (sb *StatusBar) Refresh() {
	fyne.Do(func() {
		sb.container.Refresh()
	})
}
