package bestresponse

import (
	"encoding/gob"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// SaveTo writes t to w in gob format.
func (t *Table) SaveTo(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(t.numOpponents); err != nil {
		return err
	}
	if err := enc.Encode(t.numStrategies); err != nil {
		return err
	}
	return enc.Encode(t.best)
}

// LoadTable reads a Table previously written with SaveTo.
func LoadTable(r io.Reader) (*Table, error) {
	t := &Table{}
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&t.numOpponents); err != nil {
		return nil, errors.Wrap(err, "decoding number of opponents")
	}
	if err := dec.Decode(&t.numStrategies); err != nil {
		return nil, errors.Wrap(err, "decoding number of strategies")
	}
	if err := dec.Decode(&t.best); err != nil {
		return nil, errors.Wrap(err, "decoding entries")
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Table) validate() error {
	size, err := NumProfiles(t.numOpponents, t.numStrategies)
	if err != nil {
		return err
	}

	if len(t.best) != size {
		return errors.Errorf("table has %d entries, expected %d", len(t.best), size)
	}

	for rank, best := range t.best {
		if best < 0 || best >= t.numStrategies {
			return errors.Errorf("entry %d holds strategy %d, out of range [0, %d)",
				rank, best, t.numStrategies)
		}
	}

	return nil
}

// SaveFile writes t gzip-compressed to filename. The file is replaced
// atomically so readers never observe a partial table.
func (t *Table) SaveFile(filename string) error {
	glog.V(1).Infof("Saving table to: %v", filename)
	dir := filepath.Dir(filename)
	f, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp.*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpPath := f.Name()
	defer os.Remove(tmpPath)

	w := gzip.NewWriter(f)
	if err := t.SaveTo(w); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding table")
	}
	if err := w.Close(); err != nil {
		f.Close()
		return errors.Wrap(err, "flushing gzip stream")
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	return errors.Wrap(os.Rename(tmpPath, filename), "renaming temp file")
}

// LoadFile reads a Table written with SaveFile.
func LoadFile(filename string) (*Table, error) {
	glog.V(1).Infof("Loading table from: %v", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", filename)
	}
	defer r.Close()

	return LoadTable(r)
}
