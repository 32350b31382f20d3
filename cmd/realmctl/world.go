package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/pixil98/go-realm/internal/game"
	"github.com/pixil98/go-realm/internal/storage"
)

// worldFile is the authoring format for a world: a list of records, each a key
// such as "room:1" and the values of its fields by schema name.
//
//	records:
//	  - key: room:1
//	    fields:
//	      name: The Hall
//	      portals: [portal:1]
type worldFile struct {
	Records []worldRecord `yaml:"records"`
}

type worldRecord struct {
	Key    string         `yaml:"key"`
	Fields map[string]any `yaml:"fields"`
}

// importWorld checks every record of a world file against its entity schema
// and writes them all to st. Nothing is written if any record is invalid.
func importWorld(r io.Reader, st storage.Storer) (int, error) {
	var wf worldFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil && err != io.EOF {
		return 0, fmt.Errorf("parsing world file: %w", err)
	}

	el := errors.NewErrorList()
	seen := make(map[storage.Key]bool, len(wf.Records))
	entities := make([]game.Entity, 0, len(wf.Records))
	for i, rec := range wf.Records {
		e, err := buildEntity(rec)
		if err != nil {
			el.Add(fmt.Errorf("record %d (%s): %w", i+1, rec.Key, err))
			continue
		}
		if seen[e.Key()] {
			el.Add(fmt.Errorf("record %d: %w: %s", i+1, game.ErrDuplicateEntity, e.Key()))
			continue
		}
		seen[e.Key()] = true
		entities = append(entities, e)
	}
	if err := el.Err(); err != nil {
		return 0, err
	}

	for _, e := range entities {
		data, err := storage.Marshal(e)
		if err != nil {
			return 0, fmt.Errorf("encoding %s: %w", e.Key(), err)
		}
		if err := st.Write(e.Key(), data); err != nil {
			return 0, fmt.Errorf("writing %s: %w", e.Key(), err)
		}
	}
	return len(entities), nil
}

func buildEntity(rec worldRecord) (game.Entity, error) {
	key, err := storage.ParseKey(rec.Key)
	if err != nil {
		return nil, err
	}

	e, err := game.NewEntity(key.Type, key.Id)
	if err != nil {
		return nil, err
	}

	schema := e.Schema()
	for name := range rec.Fields {
		f, ok := schema.Lookup(name)
		if !ok || !f.IsStored() {
			return nil, fmt.Errorf("unknown field %q for %s", name, key.Type)
		}
	}

	if len(rec.Fields) == 0 {
		return e, nil
	}

	data, err := json.Marshal(rec.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding fields: %w", err)
	}
	if err := storage.Unmarshal(data, e); err != nil {
		return nil, err
	}
	return e, nil
}
