package models

// LessonStatusPlanned is the status every new lesson starts with.
const LessonStatusPlanned = "Planned"

// Lesson is a dated entry of a course. Its owner is the owner of the course.
type Lesson struct {
	ID           int64   `db:"id"`
	CourseID     int64   `db:"course_id"`
	Title        string  `db:"title"`
	Topic        *string `db:"topic"`
	Date         string  `db:"date"`
	PrivateNotes *string `db:"private_notes"`
	Status       string  `db:"status"`
}

// AddLessonRequest holds the fields of the add lesson form.
type AddLessonRequest struct {
	Title        string `validate:"required" message:"Must provide title and date"`
	Date         string `validate:"required" message:"Must provide title and date"`
	Topic        *string
	PrivateNotes *string
}
