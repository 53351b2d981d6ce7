package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/tripbook/tripbook-go/internal/model"
)

func newTestUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewUserRepository(db), mock, db
}

func duplicateEntryError() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ayesha' for key 'uq_users_username'"}
}

func TestUserCreate_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := &model.User{
		FullName: "Ayesha Khan",
		Username: "ayesha",
		Email:    "ayesha@example.com",
		AuthHash: "digest",
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.FullName, user.Username, user.Email, user.AuthHash).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected ID=1, got %d", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserCreate_DuplicateEntry(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(duplicateEntryError())

	err := repo.Create(context.Background(), &model.User{Username: "ayesha"})
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestUserCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &model.User{Username: "ayesha"})
	if err == nil || errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected plain DB error, got %v", err)
	}
}

func TestExistsByUsernameOrEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM users").
		WithArgs("ayesha", "ayesha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "ayesha", "ayesha@example.com")
	if err != nil {
		t.Fatalf("ExistsByUsernameOrEmail() unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
}

func TestExistsByUsernameOrEmail_NoRows(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM users").
		WithArgs("nobody", "nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "nobody", "nobody@example.com")
	if err != nil {
		t.Fatalf("ExistsByUsernameOrEmail() unexpected error: %v", err)
	}
	if exists {
		t.Error("expected exists=false")
	}
}

func TestGetByUsername(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "full_name", "username", "email", "auth_hash", "created_at"}).
		AddRow(1, "Ayesha Khan", "ayesha", "ayesha@example.com", "digest", now)

	mock.ExpectQuery("SELECT id, full_name, username, email, auth_hash, created_at FROM users WHERE username").
		WithArgs("ayesha").
		WillReturnRows(rows)

	user, err := repo.GetByUsername(context.Background(), "ayesha")
	if err != nil {
		t.Fatalf("GetByUsername() unexpected error: %v", err)
	}
	if user.ID != 1 || user.Email != "ayesha@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, full_name, username, email, auth_hash, created_at FROM users WHERE username").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, full_name, username, email, auth_hash, created_at FROM users WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(errors.New("Duplicate entry")) {
		t.Error("plain error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(&mysql.MySQLError{Number: 1045}) {
		t.Error("access denied error should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(duplicateEntryError()) {
		t.Error("expected 1062 to be a duplicate entry error")
	}
}
