package storage

import (
	"encoding/binary"
	"fmt"

	bbolt "go.etcd.io/bbolt"
)

// BoltStore keeps records in a bbolt database, one bucket per object type with
// big-endian id keys so records iterate in id order.
type BoltStore struct {
	db *bbolt.DB
}

func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: bolt %s: %v", ErrCouldNotOpenSource, path, err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(bucket []byte, b *bbolt.Bucket) error {
			return b.ForEach(func(k, _ []byte) error {
				if len(k) != 8 {
					return nil
				}
				names = append(names, Key{Type: string(bucket), Id: binary.BigEndian.Uint64(k)}.RecordName())
				return nil
			})
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotOpenSource, err)
	}
	return names, nil
}

func (s *BoltStore) Read(name string) ([]byte, error) {
	key, err := ParseRecordName(name)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(key.Type))
		if b == nil {
			return fmt.Errorf("no bucket for %q", key.Type)
		}
		v := b.Get(idToKey(key.Id))
		if v == nil {
			return fmt.Errorf("no record %s", name)
		}
		// Values are only valid for the life of the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCouldNotOpenSource, err)
	}
	return data, nil
}

func (s *BoltStore) Write(key Key, data []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(key.Type))
		if err != nil {
			return fmt.Errorf("creating bucket %q: %w", key.Type, err)
		}
		return b.Put(idToKey(key.Id), data)
	})
}

func (s *BoltStore) Delete(key Key) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(key.Type))
		if b == nil {
			return nil
		}
		return b.Delete(idToKey(key.Id))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func idToKey(id uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return buf
}
