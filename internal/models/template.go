package models

// CommentTemplate is a reusable snippet the teacher can expand from a
// shortcut keyword. Templates serve only as copy source text; nothing else
// references them by id.
type CommentTemplate struct {
	ID       string `json:"id"`
	Keyword  string `json:"keyword"`
	Content  string `json:"content"`
	Category string `json:"category"`
}
