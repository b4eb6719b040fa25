package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/arcsim/internal/experiment"
)

type Formats struct {
	CSV  bool
	JSON bool
	SVG  bool
}

func (f Formats) Any() bool {
	return f.CSV || f.JSON || f.SVG
}

// Store writes the artifacts of a run into its own directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunDir creates and returns a fresh directory for the named run.
func (s *Store) RunDir(name string) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().UnixNano())
	dir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Save writes the requested formats for res into dir and returns the
// paths it created. Infeasible runs only get the JSON summary.
func (s *Store) Save(dir string, res *experiment.Result, f Formats) ([]string, error) {
	var written []string

	if f.JSON {
		path := filepath.Join(dir, "result.json")
		if err := writeFile(path, func(file *os.File) error {
			return WriteJSON(file, res, true)
		}); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if res.Trajectory == nil {
		return written, nil
	}

	if f.CSV {
		path := filepath.Join(dir, "trajectory.csv")
		if err := writeFile(path, func(file *os.File) error {
			return WriteCSV(file, res.Trajectory)
		}); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if f.SVG {
		path := filepath.Join(dir, "trajectory.svg")
		if err := os.WriteFile(path, []byte(SVG(res.Trajectory, 800, 600)), 0644); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeFile(path string, fn func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
