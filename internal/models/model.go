package models

import (
	"time"
)

// Model is the base model for all other models.
type Model struct {
	ID        uint      `json:"id" example:"17"`
	CreatedAt time.Time `json:"createdAt" example:"2024-02-10T16:49:21.329Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-02-11T10:11:12.845Z"`
}
