package main

import (
	"errors"
	"net/http"

	"brewhub/internal/store"

	"github.com/go-chi/chi/v5"
)

type upsertReviewPayload struct {
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required,max=500"`
}

// upsertReviewHandler writes at most one review per (user, brewery) pair:
// repeat submissions overwrite rating and description in place. The brewery
// name is resolved from the directory before the write; if that lookup fails
// the write is rejected and nothing is stored.
func (app *application) upsertReviewHandler(w http.ResponseWriter, r *http.Request) {
	breweryID := chi.URLParam(r, "breweryID")

	var payload upsertReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	identity := getIdentityFromContext(r)

	breweryName, err := app.directory.GetName(r.Context(), breweryID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	review := &store.Review{
		Rating:      payload.Rating,
		Description: payload.Description,
		Username:    identity.Username,
		Email:       identity.Email,
		BreweryID:   breweryID,
		BreweryName: breweryName,
	}

	created, err := app.store.Reviews.Upsert(r.Context(), review)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if created {
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Review added successfully"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Review updated successfully"})
}

func (app *application) getBreweryReviewsHandler(w http.ResponseWriter, r *http.Request) {
	breweryID := chi.URLParam(r, "breweryID")

	reviews, err := app.store.Reviews.GetByBrewery(r.Context(), breweryID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if reviews == nil {
		reviews = []store.Review{}
	}

	if err := writeJSON(w, http.StatusOK, reviews); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAverageRatingHandler reports the mean rating; a brewery with no reviews
// yields null, which callers must read as unrated rather than rated zero.
func (app *application) getAverageRatingHandler(w http.ResponseWriter, r *http.Request) {
	breweryID := chi.URLParam(r, "breweryID")

	average, err := app.store.Reviews.AverageRating(r.Context(), breweryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"averageRating": nil})
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, map[string]float64{"averageRating": average}); err != nil {
		app.internalServerError(w, r, err)
	}
}
