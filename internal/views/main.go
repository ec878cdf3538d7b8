package views

import (
	"pokedex/internal/models"
	"pokedex/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView assembles the single-window layout: search bar on top, result
// area in the center, status bar at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	searchBar     *components.SearchBar
	resultPanel   *components.ResultPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	searchHandler func(query string)
}

// NewMainView creates the main view and installs its layout on the window
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.searchBar = components.NewSearchBar()
	mv.resultPanel = components.NewResultPanel()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	// The result area scrolls so sprite and chart stay reachable at the
	// minimum window size.
	resultArea := container.NewVScroll(mv.resultPanel.GetContainer())

	mv.mainContainer = container.NewBorder(
		mv.searchBar.GetContainer(), // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		resultArea,                  // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.searchBar.SetSearchHandler(func(query string) {
		if mv.searchHandler != nil {
			mv.searchHandler(query)
		}
	})
}

// SetSearchHandler sets the handler invoked with the raw search text
func (mv *MainView) SetSearchHandler(handler func(query string)) {
	mv.searchHandler = handler
}

// UI update methods - called by controller

// RenderResult rebuilds the result area for one looked-up record
func (mv *MainView) RenderResult(content *models.ResultContent) {
	mv.resultPanel.ShowResult(content)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetStoreInfo shows which database file lookups run against
func (mv *MainView) SetStoreInfo(path string) {
	mv.statusBar.SetStoreInfo(path)
}

// SetResultInfo shows which record the result area presents
func (mv *MainView) SetResultInfo(id int64, name string) {
	mv.statusBar.SetResultInfo(id, name)
}

// ShowWarning displays an informational warning dialog
func (mv *MainView) ShowWarning(message string) {
	fyne.Do(func() {
		dialog.ShowInformation("Error", message, mv.window)
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// FocusSearchEntry moves keyboard focus to the name entry
func (mv *MainView) FocusSearchEntry() {
	mv.searchBar.FocusEntry(mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// GetSearchBar returns the search bar component
func (mv *MainView) GetSearchBar() *components.SearchBar {
	return mv.searchBar
}

// GetResultPanel returns the result panel component
func (mv *MainView) GetResultPanel() *components.ResultPanel {
	return mv.resultPanel
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// Close closes the view
func (mv *MainView) Close() {
	fyne.Do(func() {
		mv.window.Close()
	})
}

// Refresh refreshes the entire view
func (mv *MainView) Refresh() {
	fyne.Do(func() {
		mv.mainContainer.Refresh()
	})
}
