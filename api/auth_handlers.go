package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
)

var errInvalidCredentials = errors.New("invalid credentials")

func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	input.Email = normalizeEmail(input.Email)

	v := newValidator()
	v.checkName(input.Name)
	v.checkEmail(input.Email)
	v.checkPassword(input.Password)
	if v.hasErrors() {
		failedValidation(w, v)
		return
	}

	// fast path for a friendlier error; the unique index on users.email is
	// what actually guarantees uniqueness under concurrent registrations
	existing, err := app.storage.getUserByEmail(input.Email)
	if err != nil {
		app.serverError(w, err)
		return
	}
	if existing != nil {
		writeError(w, errDuplicateEmail, http.StatusConflict)
		return
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		app.serverError(w, err)
		return
	}
	u := &user{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	err = app.storage.insertUser(u)
	if err != nil {
		if errors.Is(err, errDuplicateEmail) {
			writeError(w, errDuplicateEmail, http.StatusConflict)
			return
		}
		app.serverError(w, err)
		return
	}

	if app.mailer != nil {
		app.background(func() {
			err := app.mailer.sendWelcome(u)
			if err != nil {
				log.Println(err)
			}
		})
	}

	app.writeAuthResponse(w, http.StatusCreated, u)
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	input.Email = normalizeEmail(input.Email)

	v := newValidator()
	v.checkCond(input.Email != "", "email", "must be provided")
	v.checkCond(input.Password != "", "password", "must be provided")
	if v.hasErrors() {
		failedValidation(w, v)
		return
	}

	u, err := app.storage.getUserByEmail(input.Email)
	if err != nil {
		app.serverError(w, err)
		return
	}
	if u == nil {
		// burn a comparison so an unknown email costs the same as a wrong password
		passwordMatches(input.Password, decoyHash)
		writeError(w, errInvalidCredentials, http.StatusUnauthorized)
		return
	}
	if !passwordMatches(input.Password, u.PasswordHash) {
		writeError(w, errInvalidCredentials, http.StatusUnauthorized)
		return
	}

	app.writeAuthResponse(w, http.StatusOK, u)
}

func (app *application) currentUserHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	writeJSON(w, http.StatusOK, u)
}

func (app *application) writeAuthResponse(w http.ResponseWriter, statusCode int, u *user) {
	token, err := issueToken(u, app.config.jwt.secret, app.config.jwt.expiry)
	if err != nil {
		app.serverError(w, err)
		return
	}
	writeJSON(w, statusCode, authResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(app.config.jwt.expiry.Seconds()),
		User: publicUser{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		},
	})
}
