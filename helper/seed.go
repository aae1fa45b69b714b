package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"what-to-watch-backend/models"
)

// LoadCatalogSeed reads a JSON array of catalog items from a seed file. A
// missing file is not an error; seeding just falls through to the next
// source.
func LoadCatalogSeed(path string) ([]models.CatalogItem, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var items []models.CatalogItem
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("error decoding seed file %s: %v", path, err)
	}
	return items, nil
}
