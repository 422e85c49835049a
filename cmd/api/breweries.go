package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Directory pass-through: the upstream JSON is relayed verbatim, no retry, no
// caching, no transformation.

func (app *application) getBreweryHandler(w http.ResponseWriter, r *http.Request) {
	breweryID := chi.URLParam(r, "breweryID")

	raw, err := app.directory.GetByID(r.Context(), breweryID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, raw)
}

func (app *application) searchByCityHandler(w http.ResponseWriter, r *http.Request) {
	raw, err := app.directory.SearchByCity(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, raw)
}

func (app *application) searchByNameHandler(w http.ResponseWriter, r *http.Request) {
	raw, err := app.directory.SearchByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, raw)
}

func (app *application) searchByTypeHandler(w http.ResponseWriter, r *http.Request) {
	raw, err := app.directory.SearchByType(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, raw)
}
