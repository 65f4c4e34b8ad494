package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApplication(t *testing.T) (*application, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var cfg config
	cfg.env = "test"
	cfg.jwt.secret = "test-secret"
	cfg.jwt.expiry = time.Hour
	return &application{
		config:    cfg,
		storage:   newStorage(db),
		startedAt: time.Now(),
	}, mock
}

func testUser(t *testing.T, email, password string) *user {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now().Add(-time.Hour)
	return &user{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
	}
}

func userRows(u *user) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "email", "password_hash"}).
		AddRow(u.ID, u.CreatedAt, u.UpdatedAt, u.Name, u.Email, u.PasswordHash)
}

func taskRows(tasks ...*task) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "priority", "completed", "user_id"})
	for _, tk := range tasks {
		rows.AddRow(tk.ID, tk.CreatedAt, tk.UpdatedAt, tk.Name, tk.Priority, tk.Completed, tk.UserID)
	}
	return rows
}

func testTask(owner *user, name string, p priority) *task {
	now := time.Now().Add(-time.Minute)
	return &task{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
		Priority:  p,
		Completed: false,
		UserID:    owner.ID,
	}
}

// authedRequest builds a request carrying a valid bearer token for u and
// queues the user lookup the auth gate performs.
func authedRequest(t *testing.T, app *application, mock sqlmock.Sqlmock, u *user, method, target string, body io.Reader) *http.Request {
	t.Helper()
	token, err := issueToken(u, app.config.jwt.secret, app.config.jwt.expiry)
	require.NoError(t, err)
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Authorization", "Bearer "+token)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(u.ID).
		WillReturnRows(userRows(u))
	return r
}

func serve(app *application, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	composeRoutes(app).ServeHTTP(w, r)
	return w
}
