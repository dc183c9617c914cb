package models

// Student is a learner on the roster. ClassID is a soft reference to a
// Classroom; the empty string marks the student as unassigned, which is a
// valid permanent state. Grades, Comments and DailyLogs are append-ordered.
type Student struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Avatar          string     `json:"avatar,omitempty"`
	ClassID         string     `json:"class_id"`
	Grades          []Grade    `json:"grades"`
	Comments        []Comment  `json:"comments"`
	DailyLogs       []DailyLog `json:"daily_logs"`
	TargetGoal      string     `json:"target_goal,omitempty"`
	HistoricalNotes string     `json:"historical_notes,omitempty"`
}

// Clone returns a deep copy so callers can hand students across the store
// boundary without sharing slice backing arrays.
func (s Student) Clone() Student {
	clone := s
	clone.Grades = append([]Grade(nil), s.Grades...)
	clone.Comments = append([]Comment(nil), s.Comments...)
	clone.DailyLogs = append([]DailyLog(nil), s.DailyLogs...)
	return clone
}
