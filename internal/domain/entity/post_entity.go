package entity

import "time"

// Post is owned by the post store tier. The gateway only inspects UserID,
// which scopes "my posts" listings and delete authorization.
type Post struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	UserID  int64     `json:"user_id"`
}
