package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pixil98/go-testutil"
)

// mockEntity exercises every field kind.
type mockEntity struct {
	key Key

	Visible  bool
	Gold     int
	Name     string
	Aliases  []string
	Owner    Ref
	Items    []Ref
	Entrance Edge
	Exits    []Edge
	Online   bool
}

func (m *mockEntity) Key() Key {
	return m.key
}

func (m *mockEntity) Schema() Schema {
	return Schema{
		Bool("visible", &m.Visible),
		Int("gold", &m.Gold),
		String("name", &m.Name),
		Strings("aliases", &m.Aliases),
		Reference("owner", &m.Owner),
		References("items", &m.Items),
		EdgeOf("entrance", &m.Entrance),
		Edges("exits", &m.Exits),
		Bool("online", &m.Online).Unstored(),
	}
}

func newMockEntity() *mockEntity {
	return &mockEntity{
		key:     Key{Type: "mock", Id: 4},
		Visible: true,
		Gold:    -25,
		Name:    "Quoted \"name\"\nwith newline",
		Aliases: []string{"a", "b"},
		Owner:   NewRef(Key{Type: "character", Id: 2}),
		Items:   []Ref{NewRef(Key{Type: "item", Id: 8}), NewRef(Key{Type: "item", Id: 9})},
		Entrance: Edge{
			Name:   "gate",
			Target: NewRef(Key{Type: "room", Id: 1}),
		},
		Exits: []Edge{
			{Name: "forest", Target: NewRef(Key{Type: "area", Id: 3})},
			{Name: "cellar", Target: NewRef(Key{Type: "area", Id: 5}), Hidden: true},
		},
		Online: true,
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	orig := newMockEntity()

	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := &mockEntity{key: orig.key}
	if err := Unmarshal(data, got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "visible", got.Visible, orig.Visible)
	testutil.AssertEqual(t, "gold", got.Gold, orig.Gold)
	testutil.AssertEqual(t, "name", got.Name, orig.Name)
	testutil.AssertEqual(t, "aliases", strings.Join(got.Aliases, ","), "a,b")
	testutil.AssertEqual(t, "owner token", got.Owner.String(), orig.Owner.String())
	testutil.AssertEqual(t, "item count", len(got.Items), 2)
	testutil.AssertEqual(t, "second item", got.Items[1].String(), "item:9")
	testutil.AssertEqual(t, "entrance", got.Entrance, orig.Entrance, cmp.AllowUnexported(Ref{}))
	testutil.AssertEqual(t, "exit count", len(got.Exits), 2)
	testutil.AssertEqual(t, "hidden exit", got.Exits[1], orig.Exits[1], cmp.AllowUnexported(Ref{}))
	testutil.AssertEqual(t, "unstored field", got.Online, false)
}

func TestMarshal_Layout(t *testing.T) {
	e := &mockEntity{key: Key{Type: "mock", Id: 1}, Name: "x"}

	data, err := Marshal(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	testutil.AssertEqual(t, "first line", lines[0], "{")
	testutil.AssertEqual(t, "visible line", lines[1], `  "visible": false,`)
	testutil.AssertEqual(t, "name line", lines[3], `  "name": "x",`)
	testutil.AssertEqual(t, "empty list", lines[4], `  "aliases": [],`)
	testutil.AssertEqual(t, "null ref", lines[5], `  "owner": "",`)
	testutil.AssertEqual(t, "last line", lines[len(lines)-1], "}")
	if strings.Contains(string(data), "online") {
		t.Error("unstored field was written")
	}
}

func TestUnmarshal(t *testing.T) {
	tests := map[string]struct {
		record  string
		expErr  error
		expName string
		expGold int
	}{
		"missing fields keep defaults": {
			record:  `{"name": "Bob"}`,
			expName: "Bob",
			expGold: 10,
		},
		"wrong value shape is skipped": {
			record:  `{"name": "Bob", "gold": "lots"}`,
			expName: "Bob",
			expGold: 10,
		},
		"unknown keys are ignored": {
			record:  `{"name": "Bob", "colour": "red"}`,
			expName: "Bob",
			expGold: 10,
		},
		"not json": {
			record: `{"name": `,
			expErr: ErrCorruptRecord,
		},
		"not an object": {
			record: `["name", "Bob"]`,
			expErr: ErrCorruptRecord,
		},
		"null record": {
			record: `null`,
			expErr: ErrCorruptRecord,
		},
		"bad reference token": {
			record: `{"owner": "character-2"}`,
			expErr: ErrInvalidIdentifier,
		},
		"bad edge token": {
			record: `{"exits": [["forest", "area"]]}`,
			expErr: ErrInvalidIdentifier,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := &mockEntity{key: Key{Type: "mock", Id: 1}, Gold: 10}
			err := Unmarshal([]byte(tt.record), e)

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("expected %v, got %v", tt.expErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "name", e.Name, tt.expName)
			testutil.AssertEqual(t, "gold", e.Gold, tt.expGold)
		})
	}
}

// unknownKindEntity has a field whose kind the codec does not understand.
type unknownKindEntity struct {
	Name  string
	Extra float64
}

func (u *unknownKindEntity) Key() Key {
	return Key{Type: "mock", Id: 2}
}

func (u *unknownKindEntity) Schema() Schema {
	return Schema{
		String("name", &u.Name),
		{Name: "extra", Kind: Kind(99), value: &u.Extra, stored: true},
	}
}

func TestUnknownKindIsSkipped(t *testing.T) {
	e := &unknownKindEntity{Name: "thing", Extra: 1.5}

	data, err := Marshal(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "extra") {
		t.Errorf("unknown kind field was written: %s", data)
	}

	got := &unknownKindEntity{Extra: 3}
	err = Unmarshal([]byte(`{"name": "thing", "extra": 9.5}`), got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", got.Name, "thing")
	testutil.AssertEqual(t, "extra untouched", got.Extra, 3.0)
}

func TestCopyFields(t *testing.T) {
	src := newMockEntity()
	dst := &mockEntity{key: src.key}

	CopyFields(dst.Schema(), src.Schema())

	testutil.AssertEqual(t, "name", dst.Name, src.Name)
	testutil.AssertEqual(t, "owner", dst.Owner, src.Owner, cmp.AllowUnexported(Ref{}))
	testutil.AssertEqual(t, "entrance", dst.Entrance, src.Entrance, cmp.AllowUnexported(Ref{}))
	testutil.AssertEqual(t, "unstored not copied", dst.Online, false)

	dst.Aliases[0] = "changed"
	dst.Items[0] = NewRef(Key{Type: "item", Id: 100})
	dst.Exits[0].Name = "swamp"
	testutil.AssertEqual(t, "source alias", src.Aliases[0], "a")
	testutil.AssertEqual(t, "source item", src.Items[0].String(), "item:8")
	testutil.AssertEqual(t, "source exit", src.Exits[0].Name, "forest")
}

func TestResolveFields(t *testing.T) {
	e := newMockEntity()
	reg := mapRegistry{
		{Type: "character", Id: 2}: true,
		{Type: "item", Id: 8}:      true,
		{Type: "room", Id: 1}:      true,
		{Type: "area", Id: 3}:      true,
	}

	resolved, dangling := ResolveFields(e.Schema(), reg)

	testutil.AssertEqual(t, "resolved", resolved, 4)
	testutil.AssertEqual(t, "dangling count", len(dangling), 2)
	testutil.AssertEqual(t, "first dangling", dangling[0].Field, "items")
	testutil.AssertEqual(t, "second dangling", dangling[1].Ref.String(), "area:5")
	testutil.AssertEqual(t, "owner state", e.Owner.State(), Resolved)
	testutil.AssertEqual(t, "item state", e.Items[1].State(), Absent)
	testutil.AssertEqual(t, "exit state", e.Exits[0].Target.State(), Resolved)

	// Running again without registry changes yields the same result.
	resolved, dangling = ResolveFields(e.Schema(), reg)
	testutil.AssertEqual(t, "resolved again", resolved, 4)
	testutil.AssertEqual(t, "dangling again", len(dangling), 2)
}
