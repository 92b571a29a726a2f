package baseline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

type Result int

const (
	// Existing means no new results were found and the old baseline was kept.
	Existing Result = iota
	// Created means current results became the first baseline.
	Created
	// Replaced means an old baseline was removed before rotating.
	Replaced
)

func (r Result) String() string {
	switch r {
	case Existing:
		return "existing"
	case Created:
		return "created"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

var (
	ErrNoResults     = errors.New("no results to create a baseline from, run a Locust test first")
	ErrIncompleteRun = errors.New("current run is missing result files")
)

// Pair names a current result file and the path it is rotated to.
type Pair struct {
	Current  string
	Previous string
}

// Rotate moves every Current file onto its Previous path. Rotation only
// starts once all current files are known to exist.
func Rotate(fs afero.Fs, pairs []Pair, log *slog.Logger) (Result, error) {
	if len(pairs) == 0 {
		return Existing, ErrNoResults
	}

	var present, missing []string
	for _, p := range pairs {
		ok, err := afero.Exists(fs, p.Current)
		if err != nil {
			return Existing, fmt.Errorf("stat %s: %w", p.Current, err)
		}
		if ok {
			present = append(present, p.Current)
		} else {
			missing = append(missing, p.Current)
		}
	}

	if len(present) == 0 {
		return keep(fs, pairs, log)
	}
	if len(missing) > 0 {
		return Existing, fmt.Errorf("%w: %v", ErrIncompleteRun, missing)
	}

	result := Created
	for _, p := range pairs {
		ok, err := afero.Exists(fs, p.Previous)
		if err != nil {
			return Existing, fmt.Errorf("stat %s: %w", p.Previous, err)
		}
		if !ok {
			continue
		}
		if err := fs.Remove(p.Previous); err != nil {
			return Existing, fmt.Errorf("remove old baseline %s: %w", p.Previous, err)
		}
		result = Replaced
	}
	if result == Replaced {
		log.Info("Removed old baseline")
	}

	for _, p := range pairs {
		if err := fs.Rename(p.Current, p.Previous); err != nil {
			return Existing, fmt.Errorf("rename %s to %s: %w", p.Current, p.Previous, err)
		}
		log.Debug("Rotated result file",
			slog.String("from", p.Current),
			slog.String("to", p.Previous))
	}

	log.Info("Created new baseline", slog.Int("files", len(pairs)))

	return result, nil
}

func keep(fs afero.Fs, pairs []Pair, log *slog.Logger) (Result, error) {
	for _, p := range pairs {
		ok, err := afero.Exists(fs, p.Previous)
		if err != nil {
			return Existing, fmt.Errorf("stat %s: %w", p.Previous, err)
		}
		if !ok {
			return Existing, fmt.Errorf("%w: missing %s", ErrNoResults, p.Previous)
		}
	}

	log.Info("Baseline exists")

	return Existing, nil
}
