package domain

import "time"

type Room struct {
	ID        string
	HomeID    string
	Name      string
	CreatedAt time.Time
}
