package models

import "time"

// LogCategory classifies a daily observation.
type LogCategory string

const (
	LogKnowledge LogCategory = "KNOWLEDGE"
	LogSkill     LogCategory = "SKILL"
	LogAttitude  LogCategory = "ATTITUDE"
)

// DailyLog is one observation entry in a student's journal. Entries are
// append-only apart from explicit per-entry deletion. Score is an optional
// quick rating and does not participate in grade aggregation.
type DailyLog struct {
	ID       string      `json:"id"`
	Date     time.Time   `json:"date"`
	Category LogCategory `json:"category"`
	Content  string      `json:"content"`
	Score    *float64    `json:"score,omitempty"`
}
