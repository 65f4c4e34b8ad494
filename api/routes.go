package main

import (
	"net/http"
)

func composeRoutes(app *application) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/health", app.healthCheckHandler)

	mux.HandleFunc("POST /v1/auth/register", app.registerUserHandler)
	mux.HandleFunc("POST /v1/auth/login", app.loginUserHandler)
	mux.HandleFunc("GET /v1/auth/me", app.requireAuth(app.currentUserHandler))

	mux.HandleFunc("POST /v1/todo/create", app.requireAuth(app.createTaskHandler))
	mux.HandleFunc("GET /v1/todo/list", app.requireAuth(app.listTasksHandler))
	mux.HandleFunc("GET /v1/todo/stats", app.requireAuth(app.taskStatsHandler))
	mux.HandleFunc("GET /v1/todo/list/{id}", app.requireAuth(app.getTaskHandler))
	mux.HandleFunc("PATCH /v1/todo/update/{id}", app.requireAuth(app.updateTaskHandler))
	mux.HandleFunc("DELETE /v1/todo/list/{id}", app.requireAuth(app.deleteTaskHandler))

	handler := app.enableCORS(mux)
	if app.config.limiter.enabled {
		return app.rateLimit(handler)
	}
	return handler
}
