package config

import (
	"log"
	"os"
	"strings"

	"hotel-reservation/services"
)

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// RoomTypes returns the room type labels offered to clients, from the
// ROOM_TYPES environment variable (comma-separated) or the built-in defaults.
func RoomTypes() []string {
	defaults := []string{"Single", "Double", "Suite", "Deluxe"}

	raw := strings.TrimSpace(os.Getenv("ROOM_TYPES"))
	if raw == "" {
		return defaults
	}

	parts := strings.Split(raw, ",")
	types := make([]string, 0, len(parts))
	for _, part := range parts {
		if label := strings.TrimSpace(part); label != "" {
			types = append(types, label)
		}
	}
	if len(types) == 0 {
		return defaults
	}
	return types
}

// SeedRooms loads the sample inventory into an empty registry.
func SeedRooms(rooms *services.RoomService) {
	if len(rooms.GetAll()) > 0 {
		log.Println("Rooms already present, skipping seed")
		return
	}

	seed := []struct {
		number   string
		roomType string
		price    float64
	}{
		{"101", "Single", 50.0},
		{"102", "Single", 50.0},
		{"201", "Double", 80.0},
		{"202", "Double", 80.0},
		{"301", "Suite", 120.0},
	}

	for _, room := range seed {
		if _, err := rooms.Create(room.number, room.roomType, room.price); err != nil {
			log.Printf("warning: failed to seed room %s: %v", room.number, err)
		}
	}

	log.Println("Sample rooms seeded")
}
