package trace

import "time"

// PassKind classifies a pipeline pass.
type PassKind int

const (
	// Transformation passes rewrite the circuit.
	Transformation PassKind = iota
	// Analysis passes only inspect it and record properties.
	Analysis
)

// String returns the lowercase wire form of the kind.
func (k PassKind) String() string {
	if k == Analysis {
		return "analysis"
	}
	return "transformation"
}

// CircuitStats is the circuit snapshot recorded after a pass ran.
// Operation counts are bucketed by operand arity.
type CircuitStats struct {
	Depth int `json:"depth"`
	Size  int `json:"size"`
	Width int `json:"width"`
	Ops1Q int `json:"ops1q"`
	Ops2Q int `json:"ops2q"`
	Ops3Q int `json:"ops3q"`
}

// TotalOps sums the arity-bucketed operation counts.
func (s CircuitStats) TotalOps() int {
	return s.Ops1Q + s.Ops2Q + s.Ops3Q
}

// Property is one named value a pass left in the property set.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Step is the recorded outcome of one pipeline stage. Index is stable and
// 0-based; steps are read-only once the sequence is frozen.
type Step struct {
	Index      int
	Name       string
	Kind       PassKind
	Stats      CircuitStats
	Duration   time.Duration
	Properties []Property
	Logs       []string
}

// InfoPair is one entry of the ordered run-metadata header.
type InfoPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RunInfo carries run-level metadata: total elapsed runtime plus the ordered
// key/value pairs shown in the dashboard subtitle.
type RunInfo struct {
	Runtime time.Duration
	Fields  []InfoPair
}
