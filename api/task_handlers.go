package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

var (
	errTaskNotFound  = errors.New("task not found")
	errTaskForbidden = errors.New("you do not have permission to access this task")
)

type listMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func (app *application) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	var input struct {
		Name     string   `json:"name"`
		Priority priority `json:"priority"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	v := newValidator()
	v.checkName(input.Name)
	v.checkPriority(input.Priority)
	if v.hasErrors() {
		failedValidation(w, v)
		return
	}

	t := &task{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Priority: input.Priority,
		UserID:   u.ID,
	}
	err = app.storage.insertTask(t)
	if err != nil {
		app.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (app *application) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	query := r.URL.Query()

	f := taskFilters{page: 1, limit: 10}
	v := newValidator()

	if s := query.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		v.checkCond(err == nil && page >= 1, "page", "must be a positive integer")
		f.page = page
	}
	if s := query.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		v.checkCond(err == nil && limit >= 1 && limit <= 100, "limit", "must be an integer between 1 and 100")
		f.limit = limit
	}
	if s := query.Get("priority"); s != "" {
		f.priority = priority(s)
		v.checkPriority(f.priority)
	}
	if s := query.Get("completed"); s != "" {
		completed, err := strconv.ParseBool(s)
		v.checkCond(err == nil, "completed", "must be true or false")
		f.completed = sql.NullBool{Bool: completed, Valid: true}
	}
	if v.hasErrors() {
		failedValidation(w, v)
		return
	}

	tasks, total, err := app.storage.getTasks(u.ID, f)
	if err != nil {
		app.serverError(w, err)
		return
	}
	totalPages := (total + f.limit - 1) / f.limit
	writeJSON(w, http.StatusOK, map[string]any{
		"data": tasks,
		"meta": listMeta{
			Total:      total,
			Page:       f.page,
			Limit:      f.limit,
			TotalPages: totalPages,
		},
	})
}

func (app *application) taskStatsHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	stats, err := app.storage.getTaskStats(u.ID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// taskForRequest loads the task in the request path and enforces ownership:
// absent → 404, owned by someone else → 403. It returns nil once a response
// has been written.
func (app *application) taskForRequest(w http.ResponseWriter, r *http.Request) *task {
	u := getUserFromRequest(r)
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, errTaskNotFound, http.StatusNotFound)
		return nil
	}
	t, err := app.storage.getTaskByID(id)
	if err != nil {
		app.serverError(w, err)
		return nil
	}
	if t == nil {
		writeError(w, errTaskNotFound, http.StatusNotFound)
		return nil
	}
	if t.UserID != u.ID {
		writeError(w, errTaskForbidden, http.StatusForbidden)
		return nil
	}
	return t
}

func (app *application) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	t := app.taskForRequest(w, r)
	if t == nil {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (app *application) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	t := app.taskForRequest(w, r)
	if t == nil {
		return
	}

	var input struct {
		Name      *string   `json:"name"`
		Priority  *priority `json:"priority"`
		Completed *bool     `json:"completed"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Completed != nil {
		t.Completed = *input.Completed
	}

	v := newValidator()
	v.checkName(t.Name)
	v.checkPriority(t.Priority)
	if v.hasErrors() {
		failedValidation(w, v)
		return
	}

	err = app.storage.updateTask(t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// deleted out from under us between the ownership check and here
			writeError(w, errTaskNotFound, http.StatusNotFound)
			return
		}
		app.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (app *application) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	t := app.taskForRequest(w, r)
	if t == nil {
		return
	}
	deleted, err := app.storage.deleteTask(t.ID)
	if err != nil {
		app.serverError(w, err)
		return
	}
	if !deleted {
		// deleted out from under us between the ownership check and here
		writeError(w, errTaskNotFound, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted successfully"})
}
