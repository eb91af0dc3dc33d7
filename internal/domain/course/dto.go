package course

// CreateCourseRequest is the admin payload for a new catalog entry.
// An explicit ID is allowed so imported catalogs keep their identifiers.
type CreateCourseRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	Code        string `json:"code" validate:"required,max=32"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Instructor  string `json:"instructor" validate:"max=120"`
	Semester    string `json:"semester" validate:"max=32"`
}

type UpdateCourseRequest struct {
	Title       string `json:"title" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Instructor  string `json:"instructor" validate:"omitempty,max=120"`
	Semester    string `json:"semester" validate:"omitempty,max=32"`
}
