package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
)

type seedFile struct {
	Homes []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Rooms []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"rooms"`
		People []struct {
			ID            string `json:"id"`
			Name          string `json:"name"`
			DeliveryToken string `json:"delivery_token"`
		} `json:"people"`
	} `json:"homes"`
}

// LoadSeedFile reads a households file:
//
//	{"homes": [{"id": "h1", "name": "Flat 4",
//	  "rooms": [{"id": "r1", "name": "Lounge"}],
//	  "people": [{"id": "<auth user id>", "name": "Alice"}]}]}
func LoadSeedFile(path string) (domain.SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.SeedData{}, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return domain.SeedData{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	var data domain.SeedData
	for _, h := range f.Homes {
		home := domain.SeedHome{ID: h.ID, Name: h.Name}
		for _, r := range h.Rooms {
			home.Rooms = append(home.Rooms, domain.SeedRoom{ID: r.ID, Name: r.Name})
		}
		for _, p := range h.People {
			home.People = append(home.People, domain.SeedPerson{
				ID:            p.ID,
				Name:          p.Name,
				DeliveryToken: p.DeliveryToken,
			})
		}
		data.Homes = append(data.Homes, home)
	}
	return data, nil
}
