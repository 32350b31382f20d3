package game

import "github.com/pixil98/go-realm/internal/storage"

const AreaType = "area"

// Area groups rooms into a named region of the world.
type Area struct {
	header

	Name        string
	Description string
	Rooms       []storage.Ref
	// Entrance is the room players arrive in, labelled for display.
	Entrance storage.Edge
	// Exits are labelled connections to neighbouring areas.
	Exits []storage.Edge
}

func (a *Area) Schema() storage.Schema {
	return storage.Schema{
		storage.String("name", &a.Name),
		storage.String("description", &a.Description),
		storage.References("rooms", &a.Rooms),
		storage.EdgeOf("entrance", &a.Entrance),
		storage.Edges("exits", &a.Exits),
	}
}
