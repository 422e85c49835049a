package main

import (
	"net/http"

	"brewhub/internal/store"
)

// currentUserHandler answers from the verified token claims alone; the account
// row is never touched.
func (app *application) currentUserHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)

	if err := writeJSON(w, http.StatusOK, map[string]string{"username": identity.Username}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listUsersHandler is operator-only (basic auth) and never serializes password
// hashes.
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.store.Users.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if users == nil {
		users = []store.User{}
	}

	if err := writeJSON(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}
