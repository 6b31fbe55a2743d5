package generator

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/redmage123/course-creator-sub021/internal/domain"
)

// WriteCatalog serializes the catalog into catalog.json under the provided
// directory.
func WriteCatalog(catalog domain.Catalog, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, "catalog.json")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(catalog); err != nil {
		return fmt.Errorf("encode json for %s: %w", path, err)
	}
	return nil
}
