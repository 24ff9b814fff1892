package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
)

type mockStudentRepo struct {
	students []models.Student
	nextID   int64
	err      error
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.students, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	student.ID = m.nextID
	m.students = append(m.students, *student)
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	for i := range m.students {
		if m.students[i].ID == student.ID {
			m.students[i] = *student
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	for i := range m.students {
		if m.students[i].ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newStudentService(repo *mockStudentRepo) *StudentService {
	return NewStudentService(repo, validator.New(), NewMetricsService(), zap.NewNop())
}

func TestStudentServiceCreateThenList(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentService(repo)

	student, err := svc.Create(context.Background(), StudentRequest{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)
	assert.Equal(t, models.Student{ID: 1, Name: "Ada", Email: "ada@x.com"}, *student)

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Student{{ID: 1, Name: "Ada", Email: "ada@x.com"}}, students)
}

func TestStudentServiceListEmptyIsNotNil(t *testing.T) {
	svc := newStudentService(&mockStudentRepo{})

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentServiceStoresValuesAsGiven(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentService(repo)

	student, err := svc.Create(context.Background(), StudentRequest{Name: " Ada ", Email: "ada@x.com "})
	require.NoError(t, err)
	assert.Equal(t, " Ada ", student.Name)
	assert.Equal(t, []models.Student{{ID: 1, Name: " Ada ", Email: "ada@x.com "}}, repo.students)

	updated, err := svc.Update(context.Background(), 1, StudentRequest{Name: "Ada  L", Email: " ada@y.com"})
	require.NoError(t, err)
	assert.Equal(t, " ada@y.com", updated.Email)
	assert.Equal(t, "Ada  L", repo.students[0].Name)
}

func TestStudentServiceCreateRequiresFields(t *testing.T) {
	repo := &mockStudentRepo{}
	svc := newStudentService(repo)

	_, err := svc.Create(context.Background(), StudentRequest{Name: "Ada", Email: "   "})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, repo.students)
}

func TestStudentServiceCreateStoreError(t *testing.T) {
	svc := newStudentService(&mockStudentRepo{err: errors.New("connection lost")})

	_, err := svc.Create(context.Background(), StudentRequest{Name: "Ada", Email: "ada@x.com"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 500, appErr.Status)
	assert.ErrorContains(t, err, "connection lost")
}

func TestStudentServiceUpdate(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{{ID: 1, Name: "Ada", Email: "ada@x.com"}}}
	svc := newStudentService(repo)

	updated, err := svc.Update(context.Background(), 1, StudentRequest{Name: "Ada Lovelace", Email: "ada@y.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@y.com", repo.students[0].Email)
}

func TestStudentServiceUpdateMissingLeavesTableUnchanged(t *testing.T) {
	original := []models.Student{{ID: 1, Name: "Ada", Email: "ada@x.com"}}
	repo := &mockStudentRepo{students: append([]models.Student(nil), original...)}
	svc := newStudentService(repo)

	_, err := svc.Update(context.Background(), 42, StudentRequest{Name: "Ghost", Email: "ghost@x.com"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "Student not found", appErrors.FromError(err).Message)
	assert.Equal(t, original, repo.students)
}

func TestStudentServiceDelete(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{{ID: 1, Name: "Ada", Email: "ada@x.com"}}}
	svc := newStudentService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.students)

	err := svc.Delete(context.Background(), 1)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
