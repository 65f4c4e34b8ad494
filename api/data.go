package main

import (
	"strings"
	"time"
)

type priority string

const (
	priorityLow    priority = "LOW"
	priorityMedium priority = "MEDIUM"
	priorityHigh   priority = "HIGH"
)

func (p priority) valid() bool {
	switch p {
	case priorityLow, priorityMedium, priorityHigh:
		return true
	}
	return false
}

type user struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
}

type task struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Priority  priority  `json:"priority"`
	Completed bool      `json:"completed"`
	UserID    string    `json:"userId"`
}

type taskStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	High      int `json:"high"`
	Medium    int `json:"medium"`
	Low       int `json:"low"`
}

// publicUser is the user shape embedded in auth responses.
type publicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int        `json:"expires_in"`
	User        publicUser `json:"user"`
}

// normalizeEmail is applied before every uniqueness check and before storage,
// so accounts differing only in case or surrounding whitespace collapse to one.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
