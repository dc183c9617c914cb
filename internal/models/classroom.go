package models

// Classroom groups students for a school year. Deleting a classroom never
// deletes its students; their ClassID transitions to "" in the same
// operation.
type Classroom struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GradeLevel string `json:"grade_level"`
	Year       string `json:"year"`
}
