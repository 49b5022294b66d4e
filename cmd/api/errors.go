package main

import (
	"fmt"
	"net/http"
)

// logs the error message along with the request method and URL
func (app *app) logError(r *http.Request, err error) {
	method := r.Method
	uri := r.URL.RequestURI()
	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// Sends an error response in JSON format
func (app *app) errorResponseJSON(w http.ResponseWriter, r *http.Request, status int, message any) {
	errorData := envelope{"error": message}
	err := app.writeJSON(w, status, errorData, nil)
	//  log the error if we encounter one while trying to write the response
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// error response for total server failure with a 500 status code. The raw
// failure message is surfaced to the caller; this is an internal tool.
func (app *app) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponseJSON(w, r, http.StatusInternalServerError, err.Error())
}

// send an error response if our client messes up with a 404
func (app *app) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	// we only log server errors, not client errors
	message := "the requested resource could not be found"
	app.errorResponseJSON(w, r, http.StatusNotFound, message)
}

// send an error response if our client messes up with a 405
func (app *app) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponseJSON(w, r, http.StatusMethodNotAllowed, message)
}

// send an error response if our client messes up with a 400 (bad request)
func (a *app) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.errorResponseJSON(w, r, http.StatusBadRequest, err.Error())
}

// error response for failed required-field checks with a 400 status code
func (a *app) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	a.errorResponseJSON(w, r, http.StatusBadRequest, errors)
}

// for requests missing a bearer token entirely
func (a *app) unauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	a.errorResponseJSON(w, r, http.StatusUnauthorized, "Unauthorized")
}

// for requests carrying a malformed, expired, or badly signed token
func (a *app) invalidTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	a.errorResponseJSON(w, r, http.StatusUnauthorized, "Invalid token")
}

// Unknown email and wrong password are indistinguishable to the caller.
func (a *app) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	a.errorResponseJSON(w, r, http.StatusUnauthorized, "Invalid credentials")
}

// for duplicate unique keys with a 409 status code
func (a *app) emailTakenResponse(w http.ResponseWriter, r *http.Request) {
	a.errorResponseJSON(w, r, http.StatusConflict, "Email already registered")
}
