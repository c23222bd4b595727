package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

// Load reads every snapshot file under dir. A missing directory is a fresh
// start, not an error.
func Load(dir string) ([]Snapshot, error) {
	files, err := filepath.Glob(filepath.Join(dir, "snapshot-*.bin"))
	if err != nil {
		return nil, err
	}

	out := make([]Snapshot, 0, len(files))
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		var s Snapshot
		if err := gob.NewDecoder(f).Decode(&s); err != nil {
			_ = f.Close()
			return nil, err
		}
		_ = f.Close()

		out = append(out, s)
	}
	return out, nil
}
