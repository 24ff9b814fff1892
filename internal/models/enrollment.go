package models

// Enrollment is a join-row linking one student to one course. The pair is not
// unique; the same student may be enrolled in a course more than once.
type Enrollment struct {
	StudentID int64 `db:"student_id" json:"student_id"`
	CourseID  int64 `db:"course_id" json:"course_id"`
}
