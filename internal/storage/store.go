package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Store is the persistence port for named collections. A collection is a whole
// JSON document: every Save overwrites it completely (last writer wins, no
// locking between callers).
type Store interface {
	// Load reads the collection into out. A missing document is not an error:
	// out is left untouched.
	Load(ctx context.Context, collection string, out any) error
	Save(ctx context.Context, collection string, data any) error
}

// FileStore persists each collection as a pretty-printed JSON file under dir.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (fs *FileStore) Load(ctx context.Context, collection string, out any) error {
	path := filepath.Join(fs.dir, collection+".json")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("collection %s does not exist yet, treating as empty", collection)
			return nil
		}
		err := fmt.Errorf("could not read collection %s: %w", collection, err)
		log.Error(err)
		return err
	}
	if err := json.Unmarshal(content, out); err != nil {
		err := fmt.Errorf("could not decode collection %s: %w", collection, err)
		log.Error(err)
		return err
	}
	return nil
}

func (fs *FileStore) Save(ctx context.Context, collection string, data any) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		err := fmt.Errorf("could not create data directory %s: %w", fs.dir, err)
		log.Error(err)
		return err
	}
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		err := fmt.Errorf("could not encode collection %s: %w", collection, err)
		log.Error(err)
		return err
	}
	path := filepath.Join(fs.dir, collection+".json")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		err := fmt.Errorf("could not write collection %s: %w", collection, err)
		log.Error(err)
		return err
	}
	return nil
}
