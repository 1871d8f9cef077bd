package department

import "time"

type Department struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	HeadEmployeeID *string   `json:"headEmployeeId,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
