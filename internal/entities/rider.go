package entities

import "time"

type Rider struct {
	ID        string
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
