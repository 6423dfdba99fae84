package models

import (
	"time"
)

// Model is the base model for all other models.
type Model struct {
	ID        uint64    `json:"id" example:"982"`                                // Numeric ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}
