package seen

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MrJJimenez/jobscan/internal/models"
)

// ReadResults reads a JSON array of results from path.
func ReadResults(path string) ([]models.Result, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []models.Result{}, nil
	}

	var results []models.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	if results == nil {
		return []models.Result{}, nil
	}
	return results, nil
}

// ReadResultsAllowMissing treats a missing file as empty history.
func ReadResultsAllowMissing(path string) ([]models.Result, error) {
	results, err := ReadResults(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Result{}, nil
		}
		return nil, err
	}
	return results, nil
}

// WriteResults writes results as pretty JSON.
func WriteResults(path string, results []models.Result) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is required")
	}
	if results == nil {
		results = []models.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
