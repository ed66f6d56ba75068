package domain

import "time"

// Status enumerates the lifecycle of an Update. Values are validated but no
// transition rules are enforced between them.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusShipped    Status = "SHIPPED"
	StatusDeprecated Status = "DEPRECATED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusShipped, StatusDeprecated:
		return true
	}
	return false
}

// Product is the only level of the hierarchy that stores its owner.
// Updates and UpdatePoints derive their owner by walking up the chain.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Update struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Status    Status    `json:"status"`
	Version   string    `json:"version,omitempty"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdatePoint struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UpdateID    string    `json:"updateId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
