package model

import "time"

// Blog is a published post. Timestamp is set once at creation and is never
// touched by updates.
type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Img       string    `json:"img"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Featured  bool      `json:"featured"`
	Timestamp time.Time `json:"timestamp"`
}
