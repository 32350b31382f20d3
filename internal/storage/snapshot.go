package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

type snapshotLine struct {
	Name   string `json:"name"`
	Record string `json:"record"`
}

// WriteSnapshot writes every record in st to w as zstd-compressed JSON lines.
// It returns the number of records written.
func WriteSnapshot(w io.Writer, st Storer) (int, error) {
	names, err := st.Names()
	if err != nil {
		return 0, err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("creating zstd writer: %w", err)
	}

	bw := bufio.NewWriter(enc)
	je := json.NewEncoder(bw)
	count := 0
	for _, name := range names {
		data, err := st.Read(name)
		if err != nil {
			_ = enc.Close()
			return count, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := je.Encode(snapshotLine{Name: name, Record: string(data)}); err != nil {
			_ = enc.Close()
			return count, fmt.Errorf("encoding %s: %w", name, err)
		}
		count++
	}

	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return count, fmt.Errorf("flushing snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return count, fmt.Errorf("closing zstd writer: %w", err)
	}
	return count, nil
}

// ReadSnapshot restores every record from a snapshot written by WriteSnapshot into st.
func ReadSnapshot(r io.Reader, st Storer) (int, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer dec.Close()

	jd := json.NewDecoder(dec)
	count := 0
	for {
		var line snapshotLine
		err := jd.Decode(&line)
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("%w: snapshot line %d: %v", ErrCorruptRecord, count+1, err)
		}

		key, err := ParseRecordName(line.Name)
		if err != nil {
			return count, err
		}
		if err := st.Write(key, []byte(line.Record)); err != nil {
			return count, fmt.Errorf("writing %s: %w", line.Name, err)
		}
		count++
	}
}
