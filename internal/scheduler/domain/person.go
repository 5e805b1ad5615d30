package domain

import "time"

type Person struct {
	ID     string
	HomeID string
	Name   string

	// DeliveryToken is the push token of the person's device. Empty when the
	// person has not registered one.
	DeliveryToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Person) HasDeliveryToken() bool { return p.DeliveryToken != "" }
