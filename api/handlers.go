package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	health := struct {
		Status      string  `json:"status"`
		Timestamp   string  `json:"timestamp"`
		Uptime      float64 `json:"uptime"`
		Environment string  `json:"environment"`
	}{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(app.startedAt).Seconds(),
		Environment: app.config.env,
	}
	writeJSON(w, http.StatusOK, health)
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Println(err)
		writeError(w, errors.New("internal server error"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func composeJSONError(err error) string {
	jsonError := map[string]string{
		"error": err.Error(),
	}
	result, err := json.Marshal(jsonError)
	if err != nil {
		log.Println(err)
		return ""
	}
	return string(result)
}

func writeError(w http.ResponseWriter, err error, statusCode int) {
	h := w.Header()
	h.Del("Content-Length")
	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	fmt.Fprintln(w, composeJSONError(err))
}

// failedValidation writes a 400 with the field-level messages collected by v.
func failedValidation(w http.ResponseWriter, v *validator) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	writeJSON(w, http.StatusBadRequest, map[string]any{"error": v.errors})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	log.Println(err)
	writeError(w, errors.New("internal server error"), http.StatusInternalServerError)
}

// background runs fn on its own goroutine, recovering any panic so a side
// task can never take the server down with it.
func (app *application) background(fn func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				log.Println(err)
			}
		}()
		fn()
	}()
}
