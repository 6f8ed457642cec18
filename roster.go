package attendance

import (
	"encoding/json"
	"fmt"
	"os"
)

// rosterEntry is one record of a roster file: a JSON array of objects, each
// carrying at least a "name" field.
type rosterEntry struct {
	Name string `json:"name"`
}

// LoadRoster reads an ordered attendee list from the JSON file at path. A
// missing or malformed file is a fatal configuration error, not retried.
func LoadRoster(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoster, err)
	}
	var entries []rosterEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRoster, path, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}
