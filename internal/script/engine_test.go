package script

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-realm/internal/storage"
)

func TestEngine_Invoke(t *testing.T) {
	room := storage.Key{Type: "room", Id: 7}
	other := storage.Key{Type: "room", Id: 8}

	tests := map[string]struct {
		bind  map[storage.Key]Trigger
		decls []string
		call  Call
		exp   bool
	}{
		"nothing declared proceeds": {
			call: Call{Owner: room, Name: "onentry"},
			exp:  true,
		},
		"declared template aborts": {
			decls: []string{"onexit:true", "onentry:false"},
			call:  Call{Owner: room, Name: "onentry"},
			exp:   false,
		},
		"other name ignored": {
			decls: []string{"onexit:false"},
			call:  Call{Owner: room, Name: "onentry"},
			exp:   true,
		},
		"bound trigger wins": {
			bind:  map[storage.Key]Trigger{room: TriggerFunc(func(Call) bool { return true })},
			decls: []string{"onentry:false"},
			call:  Call{Owner: room, Name: "onentry"},
			exp:   true,
		},
		"binding is per owner": {
			bind:  map[storage.Key]Trigger{other: TriggerFunc(func(Call) bool { return false })},
			call:  Call{Owner: room, Name: "onentry"},
			exp:   true,
		},
		"malformed declaration skipped": {
			decls: []string{"garbage", "onentry:no"},
			call:  Call{Owner: room, Name: "onentry"},
			exp:   false,
		},
		"broken template proceeds": {
			decls: []string{"onentry:{{ if }}"},
			call:  Call{Owner: room, Name: "onentry"},
			exp:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			for owner, trig := range tt.bind {
				e.Bind(owner, "onentry", trig)
			}
			testutil.AssertEqual(t, "proceed", e.Invoke(tt.decls, tt.call), tt.exp)
		})
	}
}

func TestEngine_Unbind(t *testing.T) {
	room := storage.Key{Type: "room", Id: 1}
	e := NewEngine()
	e.Bind(room, "onentry", TriggerFunc(func(Call) bool { return false }))

	testutil.AssertEqual(t, "bound", e.Invoke(nil, Call{Owner: room, Name: "onentry"}), false)

	e.Unbind(room, "onentry")
	testutil.AssertEqual(t, "unbound", e.Invoke(nil, Call{Owner: room, Name: "onentry"}), true)
}

func TestEngine_CompilesOnce(t *testing.T) {
	e := NewEngine()
	decls := []string{"onentry:false"}

	e.Invoke(decls, Call{Name: "onentry"})
	e.Invoke(decls, Call{Name: "onentry"})

	testutil.AssertEqual(t, "compiled", len(e.compiled), 1)
}
