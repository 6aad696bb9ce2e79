package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/dreamscape/config"
)

// OutputManager handles opt-in run output with CSV logging.
type OutputManager struct {
	dir        string
	perfFile   *os.File
	switchFile *os.File

	// Track if headers have been written
	perfHeaderWritten   bool
	switchHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	f, err = os.Create(filepath.Join(dir, "switches.csv"))
	if err != nil {
		om.perfFile.Close()
		return nil, fmt.Errorf("creating switches.csv: %w", err)
	}
	om.switchFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int64) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(frame)}

	if !om.perfHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// WriteSwitch writes a parameter switch record to switches.csv.
func (om *OutputManager) WriteSwitch(e SwitchEvent) error {
	if om == nil {
		return nil
	}

	records := []SwitchEvent{e}

	if !om.switchHeaderWritten {
		if err := gocsv.Marshal(records, om.switchFile); err != nil {
			return fmt.Errorf("writing switch: %w", err)
		}
		om.switchHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.switchFile); err != nil {
			return fmt.Errorf("writing switch: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.switchFile != nil {
		if err := om.switchFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
