package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar holds the name entry and search trigger
type SearchBar struct {
	container    *fyne.Container
	prompt       *widget.Label
	entry        *widget.Entry
	searchButton *widget.Button

	searchHandler func(query string)
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes search bar components
func (sb *SearchBar) createComponents() {
	sb.prompt = widget.NewLabel("Escribe el nombre del Pokémon:")

	sb.entry = widget.NewEntry()
	sb.entry.OnSubmitted = func(string) {
		sb.submit()
	}

	sb.searchButton = widget.NewButton("Buscar", func() {
		sb.submit()
	})
}

// buildLayout constructs the search bar layout: prompt on top, entry and
// button side by side below it.
func (sb *SearchBar) buildLayout() {
	inputRow := container.NewBorder(nil, nil, nil, sb.searchButton, sb.entry)
	sb.container = container.NewVBox(sb.prompt, inputRow)
}

// submit forwards the current entry text to the search handler.
// Both the button and return in the entry land here.
func (sb *SearchBar) submit() {
	if sb.searchHandler != nil {
		sb.searchHandler(sb.entry.Text)
	}
}

// SetSearchHandler sets the handler invoked with the raw query text
func (sb *SearchBar) SetSearchHandler(handler func(query string)) {
	sb.searchHandler = handler
}

// Query returns the raw entry text
func (sb *SearchBar) Query() string {
	return sb.entry.Text
}

// SetQuery replaces the entry text
func (sb *SearchBar) SetQuery(query string) {
	fyne.Do(func() {
		sb.entry.SetText(query)
	})
}

// FocusEntry moves keyboard focus to the name entry
func (sb *SearchBar) FocusEntry(window fyne.Window) {
	fyne.Do(func() {
		window.Canvas().Focus(sb.entry)
	})
}

// GetContainer returns the search bar container
func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
