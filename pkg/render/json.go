package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grupobu/tabelao/pkg/models"
	"github.com/grupobu/tabelao/pkg/partition"
)

// JSON writes one array-of-objects file per chunk plus manifest.json.
// Files are overwritten in place, so a rerun is idempotent.
func JSON(outDir string, chunks []partition.Chunk, manifest *models.Manifest) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, c := range chunks {
		data, err := json.Marshal(c.Rows)
		if err != nil {
			return fmt.Errorf("encoding chunk %s: %w", c.File, err)
		}
		if err := os.WriteFile(filepath.Join(outDir, c.File), data, 0o644); err != nil {
			return fmt.Errorf("writing chunk %s: %w", c.File, err)
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "manifest.json"), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
