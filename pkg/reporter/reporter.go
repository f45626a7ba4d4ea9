package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"linkharvest/internal/models"
)

// indent is the four-space indentation the export format requires.
const indent = "    "

// WriteJSON writes the categorized result as a JSON object whose keys are
// category strings and whose values are arrays of URL strings.
func WriteJSON(w io.Writer, result models.CategorizedResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// Save writes the categorized result to a file at path.
func Save(path string, result models.CategorizedResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, result)
}

// SaveReport writes the full crawl report, page summaries included.
func SaveReport(path string, report *models.CrawlReport) error {
	data, err := json.MarshalIndent(report, "", indent)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
