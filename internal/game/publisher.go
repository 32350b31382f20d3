package game

import "github.com/pixil98/go-realm/internal/storage"

// Publisher delivers messages to characters.
type Publisher interface {
	PublishToCharacter(charKey storage.Key, data []byte) error
}
