package controllers

import (
	"fmt"
	"image"

	"pokedex/internal/logger"
	"pokedex/internal/models"
	"pokedex/internal/sprite"
	"pokedex/internal/views/components"
)

// Storage is the lookup surface the controller drives.
type Storage interface {
	FindByName(name string) (*models.Record, error)
}

// ChartRenderer produces the stat chart bitmap for one record.
type ChartRenderer interface {
	Render(stats [models.StatCount]int, labels [models.StatCount]string) (image.Image, error)
}

// SearchView is the view surface the controller updates.
type SearchView interface {
	ShowWarning(message string)
	ShowError(err error)
	RenderResult(content *models.ResultContent)
	UpdateStatus(status string)
	SetResultInfo(id int64, name string)
}

// SearchController orchestrates one lookup: normalize the query, fetch the
// record, assemble sprite and chart, and hand the result to the view.
type SearchController struct {
	store Storage
	chart ChartRenderer
	state *models.ResultState
	log   logger.Logger

	view SearchView
}

// NewSearchController creates a new search controller
func NewSearchController(store Storage, chart ChartRenderer, state *models.ResultState, log logger.Logger) *SearchController {
	return &SearchController{
		store: store,
		chart: chart,
		state: state,
		log:   log,
	}
}

// SetView associates the view with this controller
func (sc *SearchController) SetView(view SearchView) {
	sc.view = view
}

// State returns the result-area state repository
func (sc *SearchController) State() *models.ResultState {
	return sc.state
}

// OnSearch runs the full lookup flow for one raw query. Failures leave the
// current result presentation untouched.
func (sc *SearchController) OnSearch(query string) {
	name := models.NormalizeName(query)
	if name == "" {
		sc.log.Debug("controller", "empty query rejected", nil)
		sc.view.ShowWarning("Por favor, escribe un nombre de Pokémon.")
		return
	}

	sc.view.UpdateStatus(fmt.Sprintf("Buscando '%s'...", name))

	record, err := sc.store.FindByName(name)
	if err != nil {
		sc.log.Error("controller", err, map[string]interface{}{"name": name})
		sc.view.UpdateStatus("Listo")
		sc.view.ShowError(fmt.Errorf("Error al buscar '%s': %v", name, err))
		return
	}
	if record == nil {
		sc.log.Info("controller", "record not found", map[string]interface{}{"name": name})
		sc.view.UpdateStatus("Listo")
		sc.view.ShowError(fmt.Errorf("No se encontró el Pokémon '%s'.", name))
		return
	}

	content := sc.buildContent(record)
	sc.state.SetResult(content)

	sc.view.RenderResult(content)
	sc.view.SetResultInfo(record.ID, record.Name)
	sc.view.UpdateStatus("Listo")

	sc.log.Info("controller", "record presented", map[string]interface{}{
		"name": record.Name,
		"id":   record.ID,
	})
}

// buildContent assembles everything the result area shows for a record.
// Sprite problems degrade to inline placeholders and a failed chart render
// is simply omitted; neither aborts the presentation.
func (sc *SearchController) buildContent(record *models.Record) *models.ResultContent {
	content := &models.ResultContent{Record: record}

	if !record.HasSprite() {
		content.SpritePlaceholder = components.PlaceholderNoImage
	} else {
		img, err := sprite.Decode(record.Sprite)
		if err != nil {
			sc.log.Warning("controller", "sprite decode failed", map[string]interface{}{
				"name":  record.Name,
				"bytes": len(record.Sprite),
				"error": err.Error(),
			})
			content.SpritePlaceholder = components.PlaceholderLoadError
		} else {
			content.Sprite = img
		}
	}

	chartImage, err := sc.chart.Render(record.Stats, models.StatLabels())
	if err != nil {
		sc.log.Error("controller", err, map[string]interface{}{"name": record.Name})
	} else {
		content.Chart = chartImage
	}

	return content
}
