package rider

import "time"

type RiderDB struct {
	ID        string
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
