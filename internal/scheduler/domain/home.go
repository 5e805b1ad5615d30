package domain

import "time"

// Home is a household. People, rooms and events all belong to exactly one.
type Home struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
