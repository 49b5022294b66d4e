// Filename: /cmd/api/routes.go
// Description: connects the routes with the api

package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *app) routes() http.Handler {

	// create a new router instance
	router := httprouter.New()

	// Handle 404 errors
	router.NotFound = http.HandlerFunc(app.notFoundResponse)

	// handling 405 errors
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Public routes
	router.HandlerFunc(http.MethodGet, "/api/health", app.healthHandler)
	router.HandlerFunc(http.MethodPost, "/api/register", app.registerHandler)
	router.HandlerFunc(http.MethodPost, "/api/login", app.loginHandler)

	// Everything below requires a valid bearer token
	router.HandlerFunc(http.MethodGet, "/api/stats", app.authenticate(app.getStatsHandler))

	router.HandlerFunc(http.MethodGet, "/api/voitures", app.authenticate(app.listVehiclesHandler))
	router.HandlerFunc(http.MethodPost, "/api/voitures", app.authenticate(app.createVehicleHandler))
	router.HandlerFunc(http.MethodPut, "/api/voitures/:id", app.authenticate(app.updateVehicleHandler))
	router.HandlerFunc(http.MethodDelete, "/api/voitures/:id", app.authenticate(app.deleteVehicleHandler))

	router.HandlerFunc(http.MethodGet, "/api/clients", app.authenticate(app.listClientsHandler))
	router.HandlerFunc(http.MethodPost, "/api/clients", app.authenticate(app.createClientHandler))
	router.HandlerFunc(http.MethodPut, "/api/clients/:id", app.authenticate(app.updateClientHandler))
	router.HandlerFunc(http.MethodDelete, "/api/clients/:id", app.authenticate(app.deleteClientHandler))

	router.HandlerFunc(http.MethodGet, "/api/ventes", app.authenticate(app.listSalesHandler))
	router.HandlerFunc(http.MethodPost, "/api/ventes", app.authenticate(app.createSaleHandler))

	// include panic middleware
	return app.recoverPanic(app.enableCORS(router))
}
