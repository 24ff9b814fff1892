package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-enrollment-api/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0)
	if err := r.db.SelectContext(ctx, &students, "SELECT id, name, email FROM students ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Create inserts a student and sets its generated ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	id, err := insertReturningID(ctx, r.db, "INSERT INTO students (name, email) VALUES (?, ?)", student.Name, student.Email)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	student.ID = id
	return nil
}

// Update overwrites name and email and reports the number of matched rows.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (int64, error) {
	affected, err := execAffected(ctx, r.db, "UPDATE students SET name = ?, email = ? WHERE id = ?", student.Name, student.Email, student.ID)
	if err != nil {
		return 0, fmt.Errorf("update student: %w", err)
	}
	return affected, nil
}

// Delete removes a student by ID. Enrollments referencing it are kept.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := execAffected(ctx, r.db, "DELETE FROM students WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete student: %w", err)
	}
	return affected, nil
}
