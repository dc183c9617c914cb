package models

import "time"

// CommentSource records where a narrative comment came from. Provenance is
// informational only and does not affect aggregation.
type CommentSource string

const (
	SourceManual   CommentSource = "manual"
	SourceAI       CommentSource = "ai"
	SourceTemplate CommentSource = "template"
)

// Comment is a free-text remark attached to a student.
type Comment struct {
	ID      string        `json:"id"`
	Content string        `json:"content"`
	Date    time.Time     `json:"date"`
	Source  CommentSource `json:"source"`
}
