package dto

import "time"

// CreateTagRequest entrada para criar uma tag.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// TagResponse saída de uma tag.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
