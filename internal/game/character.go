package game

import (
	"github.com/pixil98/go-realm/internal/perception"
	"github.com/pixil98/go-realm/internal/storage"
)

const CharacterType = "character"

// Character is a player or non-player inhabitant of a room.
type Character struct {
	header

	Name        string
	Description string
	Gender      string
	Room        storage.Ref
	Inventory   []storage.Ref
	Gold        int
	IsPlayer    bool
	Triggers    []string

	// Online is true while a player session is attached. It is never saved.
	Online bool
}

func (c *Character) Schema() storage.Schema {
	return storage.Schema{
		storage.String("name", &c.Name),
		storage.String("description", &c.Description),
		storage.String("gender", &c.Gender),
		storage.Reference("room", &c.Room),
		storage.References("inventory", &c.Inventory),
		storage.Int("gold", &c.Gold),
		storage.Bool("is-player", &c.IsPlayer),
		storage.Strings("triggers", &c.Triggers),
		storage.Bool("online", &c.Online).Unstored(),
	}
}

// Subject describes the character for observers at varying distances.
func (c *Character) Subject() perception.Subject {
	distant := "a person"
	switch c.Gender {
	case "male":
		distant = "a man"
	case "female":
		distant = "a woman"
	}

	return perception.Subject{
		Name:        c.Name,
		Distant:     distant,
		VeryDistant: "someone",
	}
}
