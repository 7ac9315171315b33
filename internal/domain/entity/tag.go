package entity

import "time"

// Tag categoria livre associada a produtos (N:N via ProductTag).
type Tag struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// ProductTag associação produto/tag; o par é único.
type ProductTag struct {
	ProductID string
	TagID     string
}
