package game

import "github.com/pixil98/go-realm/internal/storage"

const ItemType = "item"

type Item struct {
	header

	Name        string
	Description string
	Cost        int
	Portable    bool
	Triggers    []string
}

func (i *Item) Schema() storage.Schema {
	return storage.Schema{
		storage.String("name", &i.Name),
		storage.String("description", &i.Description),
		storage.Int("cost", &i.Cost),
		storage.Bool("portable", &i.Portable),
		storage.Strings("triggers", &i.Triggers),
	}
}
