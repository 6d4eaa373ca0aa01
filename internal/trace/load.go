package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// runFile mirrors the recorded-run JSON layout.
type runFile struct {
	RuntimeMS float64      `json:"runtimeMs"`
	Info      []InfoPair   `json:"info"`
	Steps     []stepRecord `json:"steps"`
}

type stepRecord struct {
	Name       string       `json:"name"`
	Kind       string       `json:"kind"`
	DurationMS float64      `json:"durationMs"`
	Stats      CircuitStats `json:"stats"`
	Properties []Property   `json:"properties"`
	Logs       []string     `json:"logs"`
}

// Load reads a recorded run file and returns its frozen sequence.
func Load(path string) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	return Parse(data)
}

// Parse decodes a recorded run from raw JSON.
func Parse(data []byte) (*Sequence, error) {
	var raw runFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}

	collector := NewCollector(RunInfo{
		Runtime: millis(raw.RuntimeMS),
		Fields:  raw.Info,
	})
	for i, rec := range raw.Steps {
		kind, err := parseKind(rec.Kind)
		if err != nil {
			return nil, fmt.Errorf("trace step %d: %w", i, err)
		}
		collector.Add(Step{
			Name:       rec.Name,
			Kind:       kind,
			Stats:      rec.Stats,
			Duration:   millis(rec.DurationMS),
			Properties: rec.Properties,
			Logs:       rec.Logs,
		})
	}

	seq, err := collector.Freeze()
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	return seq, nil
}

func parseKind(value string) (PassKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "transformation":
		return Transformation, nil
	case "analysis":
		return Analysis, nil
	default:
		return 0, fmt.Errorf("unknown pass kind %q", value)
	}
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
