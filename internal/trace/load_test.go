package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleRun = `{
  "runtimeMs": 184.5,
  "info": [
    {"key": "backend", "value": "aer_simulator"},
    {"key": "qubits", "value": "5"}
  ],
  "steps": [
    {
      "name": "UnitarySynthesis",
      "kind": "transformation",
      "durationMs": 12.25,
      "stats": {"depth": 14, "size": 33, "width": 5, "ops1q": 18, "ops2q": 15},
      "logs": ["synthesized 3 unitary blocks"]
    },
    {
      "name": "Depth",
      "kind": "Analysis",
      "durationMs": 1,
      "stats": {"depth": 14, "size": 33, "width": 5, "ops1q": 18, "ops2q": 15},
      "properties": [{"name": "depth", "value": "14"}]
    }
  ]
}`

func TestParse_ValidRun(t *testing.T) {
	seq, err := Parse([]byte(sampleRun))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if seq.Len() != 2 {
		t.Fatalf("Len = %d, want 2", seq.Len())
	}

	info := seq.Info()
	if info.Runtime != 184500*time.Microsecond {
		t.Fatalf("Runtime = %v, want 184.5ms", info.Runtime)
	}
	if len(info.Fields) != 2 || info.Fields[0].Key != "backend" {
		t.Fatalf("Fields = %+v, want backend first", info.Fields)
	}

	first := seq.Step(0)
	if first.Name != "UnitarySynthesis" || first.Kind != Transformation {
		t.Fatalf("Step(0) = %q/%v, want UnitarySynthesis/transformation", first.Name, first.Kind)
	}
	if first.Duration != 12250*time.Microsecond {
		t.Fatalf("Step(0).Duration = %v, want 12.25ms", first.Duration)
	}
	if first.Stats.Depth != 14 || first.Stats.TotalOps() != 33 {
		t.Fatalf("Step(0).Stats = %+v, want depth 14, 33 ops", first.Stats)
	}

	// Kind matching is case-insensitive.
	if seq.Step(1).Kind != Analysis {
		t.Fatalf("Step(1).Kind = %v, want Analysis", seq.Step(1).Kind)
	}
	if len(seq.Step(1).Properties) != 1 {
		t.Fatalf("Step(1).Properties = %+v, want one entry", seq.Step(1).Properties)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"malformed json", `{"steps": [`, "parse trace"},
		{"unknown kind", `{"steps": [{"name": "X", "kind": "mystery"}]}`, "unknown pass kind"},
		{"empty run", `{"steps": []}`, "no steps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse returned nil error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("error = %q, want it to mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte(sampleRun), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	seq, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if seq.Len() != 2 {
		t.Fatalf("Len = %d, want 2", seq.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Load returned nil error for a missing file")
	}
}

func TestDemo_IsFrozenAndNonEmpty(t *testing.T) {
	seq := Demo()
	if seq.Len() == 0 {
		t.Fatal("Demo sequence is empty")
	}
	for i := 0; i < seq.Len(); i++ {
		if seq.Step(i).Index != i {
			t.Fatalf("Step(%d).Index = %d, want %d", i, seq.Step(i).Index, i)
		}
		if seq.Step(i).Name == "" {
			t.Fatalf("Step(%d) has an empty name", i)
		}
	}
}
