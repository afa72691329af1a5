// Package store persists the record collections as JSON files: one global
// users file, one wallet file per owner, and one global categories file.
// Every store follows the same contract: loading a missing file degrades
// to an empty collection, loading a corrupt file or failing a write
// surfaces a PersistenceError, and saves rewrite the whole file.
package store

import (
	"encoding/json"
	"os"

	"fjacquet/homefinance/internal/config"
	"fjacquet/homefinance/internal/fileutils"
	"fjacquet/homefinance/internal/finerror"

	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// loadCollection reads a whole JSON collection from path. A missing file
// is first-run bootstrap, not an error: it yields the zero-length slice.
func loadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Record file not found, starting empty: %s", path)
			return []T{}, nil
		}
		return nil, &finerror.PersistenceError{Op: "read", Path: path, Err: err}
	}

	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &finerror.PersistenceError{Op: "parse", Path: path, Err: err}
	}

	log.Debugf("Loaded %d records from %s", len(records), path)
	return records, nil
}

// saveCollection rewrites the whole JSON collection at path, creating the
// parent directory if needed.
func saveCollection[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &finerror.PersistenceError{Op: "marshal", Path: path, Err: err}
	}

	if err := fileutils.WriteFile(path, data, 0644); err != nil {
		return &finerror.PersistenceError{Op: "write", Path: path, Err: err}
	}

	log.Debugf("Saved %d records to %s", len(records), path)
	return nil
}
