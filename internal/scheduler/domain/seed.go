package domain

// SeedData describes the households loaded by the seed command.
type SeedData struct {
	Homes []SeedHome
}

type SeedHome struct {
	ID     string
	Name   string
	Rooms  []SeedRoom
	People []SeedPerson
}

type SeedRoom struct {
	ID   string
	Name string
}

type SeedPerson struct {
	ID            string
	Name          string
	DeliveryToken string
}
