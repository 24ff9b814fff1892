package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-enrollment-api/internal/models"
)

func newRepoMock(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, driver), mock, func() { db.Close() }
}

func TestStudentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Ada", "ada@x.com").
		AddRow(2, "Grace", "grace@x.com")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM students ORDER BY id")).WillReturnRows(rows)

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, models.Student{ID: 1, Name: "Ada", Email: "ada@x.com"}, students[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT id, name, email FROM students").WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentRepositoryListError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT id, name, email FROM students").WillReturnError(errors.New("table missing"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list students: table missing")
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students (name, email) VALUES (?, ?)")).
		WithArgs("Ada", "ada@x.com").
		WillReturnResult(sqlmock.NewResult(7, 1))

	student := &models.Student{Name: "Ada", Email: "ada@x.com"}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(7), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreatePostgresReturning(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "postgres")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students (name, email) VALUES ($1, $2) RETURNING id")).
		WithArgs("Ada", "ada@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	student := &models.Student{Name: "Ada", Email: "ada@x.com"}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(3), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET name = ?, email = ? WHERE id = ?")).
		WithArgs("Ada L", "ada@y.com", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET name = ?, email = ? WHERE id = ?")).
		WithArgs("Nobody", "n@x.com", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Update(context.Background(), &models.Student{ID: 1, Name: "Ada L", Email: "ada@y.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Update(context.Background(), &models.Student{ID: 99, Name: "Nobody", Email: "n@x.com"})
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "postgres")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
