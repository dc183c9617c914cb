package store

import (
	"errors"
	"sync"

	"github.com/noah-isme/edutrack-api/internal/models"
)

// ErrNotFound is returned when a record id has no match. Services translate
// it into the API error taxonomy.
var ErrNotFound = errors.New("record not found")

// Roster is the process-wide application state: the ordered collection of
// students, classrooms and comment templates. All mutation goes through
// named operations under a single writer lock; records are value-like and
// replaced wholesale on edit, so readers always receive copies and never
// observe a partially applied batch.
type Roster struct {
	mu        sync.RWMutex
	students  []models.Student
	classes   []models.Classroom
	templates []models.CommentTemplate
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// ListStudents returns a copy of every student in roster order.
func (r *Roster) ListStudents() []models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneStudents(r.students)
}

// StudentsByClass returns students assigned to the given class id. An empty
// id selects the unassigned students.
func (r *Roster) StudentsByClass(classID string) []models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Student, 0)
	for _, s := range r.students {
		if s.ClassID == classID {
			out = append(out, s.Clone())
		}
	}
	return out
}

// GetStudent returns a copy of the student with the given id.
func (r *Roster) GetStudent(id string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if s.ID == id {
			clone := s.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// AddStudent appends a student to the roster.
func (r *Roster) AddStudent(student models.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = append(r.students, student.Clone())
}

// AddStudents appends a batch of students in one critical section, so the
// whole import becomes visible at once.
func (r *Roster) AddStudents(students []models.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range students {
		r.students = append(r.students, s.Clone())
	}
}

// ReplaceStudent swaps the stored student with the same id for the given
// version.
func (r *Roster) ReplaceStudent(student models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.students {
		if s.ID == student.ID {
			r.students[i] = student.Clone()
			return nil
		}
	}
	return ErrNotFound
}

// DeleteStudent removes the student with the given id.
func (r *Roster) DeleteStudent(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ApplyImport merges updated students and appends new ones as one atomic
// batch. Updated students must already exist; unknown ids are skipped so a
// concurrent deletion cannot resurrect a record.
func (r *Roster) ApplyImport(updated, added []models.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range updated {
		for i, s := range r.students {
			if s.ID == u.ID {
				r.students[i] = u.Clone()
				break
			}
		}
	}
	for _, a := range added {
		r.students = append(r.students, a.Clone())
	}
}

// ListClasses returns a copy of every classroom.
func (r *Roster) ListClasses() []models.Classroom {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Classroom(nil), r.classes...)
}

// GetClass returns the classroom with the given id.
func (r *Roster) GetClass(id string) (*models.Classroom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.classes {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// AddClass appends a classroom.
func (r *Roster) AddClass(class models.Classroom) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes = append(r.classes, class)
}

// ReplaceClass swaps the stored classroom with the same id.
func (r *Roster) ReplaceClass(class models.Classroom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.classes {
		if c.ID == class.ID {
			r.classes[i] = class
			return nil
		}
	}
	return ErrNotFound
}

// DeleteClassCascade removes the classroom and moves every member student
// to the unassigned state in the same critical section. It returns the
// number of students affected.
func (r *Roster) DeleteClassCascade(classID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := -1
	for i, c := range r.classes {
		if c.ID == classID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, ErrNotFound
	}
	r.classes = append(r.classes[:idx], r.classes[idx+1:]...)
	affected := 0
	for i, s := range r.students {
		if s.ClassID == classID {
			r.students[i].ClassID = ""
			affected++
		}
	}
	return affected, nil
}

// ListTemplates returns a copy of every comment template.
func (r *Roster) ListTemplates() []models.CommentTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.CommentTemplate(nil), r.templates...)
}

// AddTemplate appends a comment template.
func (r *Roster) AddTemplate(tpl models.CommentTemplate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = append(r.templates, tpl)
}

// ReplaceTemplate swaps the stored template with the same id.
func (r *Roster) ReplaceTemplate(tpl models.CommentTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.templates {
		if t.ID == tpl.ID {
			r.templates[i] = tpl
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTemplate removes the template with the given id.
func (r *Roster) DeleteTemplate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.templates {
		if t.ID == id {
			r.templates = append(r.templates[:i], r.templates[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func cloneStudents(in []models.Student) []models.Student {
	out := make([]models.Student, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
