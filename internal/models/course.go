package models

// Course is a class owned by a single user.
type Course struct {
	ID          int64   `db:"id"`
	UserID      int64   `db:"user_id"` // Owner
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Weekdays    *string `db:"weekdays"`
	Time        *string `db:"time"`
	Mode        *string `db:"mode"`
	Platform    *string `db:"platform"`
}

// CreateCourseRequest holds the fields of the create class form.
// Optional fields are nil when they were not submitted at all.
type CreateCourseRequest struct {
	Name        string `validate:"required" message:"Must provide class name"`
	Description *string
	Weekdays    *string
	Time        *string
	Mode        *string
	Platform    *string
}
