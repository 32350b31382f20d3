package game

import (
	"sync"
	"testing"

	"github.com/pixil98/go-realm/internal/storage"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs map[storage.Key][]string
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{msgs: make(map[storage.Key][]string)}
}

func (p *recordingPublisher) PublishToCharacter(charKey storage.Key, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs[charKey] = append(p.msgs[charKey], string(data))
	return nil
}

func (p *recordingPublisher) last(charKey storage.Key) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	msgs := p.msgs[charKey]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func (p *recordingPublisher) count(charKey storage.Key) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.msgs[charKey])
}

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	st, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return st
}

func mustCreate[T Entity](t *testing.T, r *Realm, objectType string) T {
	t.Helper()
	e, err := r.Create(objectType, 0)
	if err != nil {
		t.Fatalf("creating %s: %v", objectType, err)
	}
	return e.(T)
}

func newRoom(t *testing.T, r *Realm, name string, x, y, z int) *Room {
	t.Helper()
	rm := mustCreate[*Room](t, r, RoomType)
	rm.Name = name
	rm.X, rm.Y, rm.Z = x, y, z
	return rm
}

func connect(t *testing.T, r *Realm, a, b *Room, nameA, nameB string, flags ...string) *Portal {
	t.Helper()
	p := mustCreate[*Portal](t, r, PortalType)
	p.Name, p.Name2 = nameA, nameB
	p.Room1 = storage.NewResolvedRef(a.Key())
	p.Room2 = storage.NewResolvedRef(b.Key())
	p.FlagNames = append([]string{PortalCanSeeThrough}, flags...)
	a.Portals = withRef(a.Portals, p.Key())
	b.Portals = withRef(b.Portals, p.Key())
	return p
}

func newPlayer(t *testing.T, r *Realm, name, gender string, room *Room) *Character {
	t.Helper()
	c := mustCreate[*Character](t, r, CharacterType)
	c.Name = name
	c.Gender = gender
	c.IsPlayer = true
	c.Room = storage.NewResolvedRef(room.Key())
	room.Characters = withRef(room.Characters, c.Key())
	return c
}
