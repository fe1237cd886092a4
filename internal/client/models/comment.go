package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Comment is a single comment as returned by either comment endpoint.
// The recipe endpoint names the author "createdBy", the admin endpoint
// "author"; both decode into Author.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	Author      string    `json:"createdBy"`
	Content     string    `json:"content"`
	CreatedDate Timestamp `json:"createdDate"`
}

func (c *Comment) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          uuid.UUID `json:"id"`
		CreatedBy   string    `json:"createdBy"`
		Author      string    `json:"author"`
		Content     string    `json:"content"`
		CreatedDate Timestamp `json:"createdDate"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	c.ID = raw.ID
	c.Author = raw.CreatedBy
	if c.Author == "" {
		c.Author = raw.Author
	}
	c.Content = raw.Content
	c.CreatedDate = raw.CreatedDate
	return nil
}

// CanDeleteComment reports whether viewer may delete a comment written by
// author on a recipe owned by owner.
func CanDeleteComment(viewer, author, owner string) bool {
	return viewer == author || viewer == owner
}
