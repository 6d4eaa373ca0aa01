package trace

import "time"

// Demo returns a small built-in run so the dashboard can be explored
// without a recorded trace file.
func Demo() *Sequence {
	collector := NewCollector(RunInfo{
		Runtime: 184 * time.Millisecond,
		Fields: []InfoPair{
			{Key: "backend", Value: "aer_simulator"},
			{Key: "optimization_level", Value: "2"},
			{Key: "qubits", Value: "5"},
		},
	})

	steps := []Step{
		{
			Name: "UnitarySynthesis", Kind: Transformation,
			Stats:    CircuitStats{Depth: 14, Size: 33, Width: 5, Ops1Q: 18, Ops2Q: 15},
			Duration: 12 * time.Millisecond,
			Logs:     []string{"synthesized 3 unitary blocks"},
		},
		{
			Name: "Depth", Kind: Analysis,
			Stats:    CircuitStats{Depth: 14, Size: 33, Width: 5, Ops1Q: 18, Ops2Q: 15},
			Duration: time.Millisecond,
			Properties: []Property{
				{Name: "depth", Value: "14"},
			},
		},
		{
			Name: "TrivialLayout", Kind: Transformation,
			Stats:    CircuitStats{Depth: 14, Size: 33, Width: 5, Ops1Q: 18, Ops2Q: 15},
			Duration: 3 * time.Millisecond,
			Properties: []Property{
				{Name: "layout", Value: "[0, 1, 2, 3, 4]"},
			},
		},
		{
			Name: "CheckMap", Kind: Analysis,
			Stats:    CircuitStats{Depth: 14, Size: 33, Width: 5, Ops1Q: 18, Ops2Q: 15},
			Duration: 2 * time.Millisecond,
			Properties: []Property{
				{Name: "is_swap_mapped", Value: "true"},
			},
		},
		{
			Name: "BasisTranslator", Kind: Transformation,
			Stats:    CircuitStats{Depth: 22, Size: 48, Width: 5, Ops1Q: 30, Ops2Q: 18},
			Duration: 41 * time.Millisecond,
			Logs: []string{
				"translating to basis [cx, id, rz, sx, x]",
				"translation complete after 2 rounds",
			},
		},
		{
			Name: "Optimize1qGatesDecomposition", Kind: Transformation,
			Stats:    CircuitStats{Depth: 18, Size: 39, Width: 5, Ops1Q: 21, Ops2Q: 18},
			Duration: 25 * time.Millisecond,
		},
		{
			Name: "FixedPoint", Kind: Analysis,
			Stats:    CircuitStats{Depth: 18, Size: 39, Width: 5, Ops1Q: 21, Ops2Q: 18},
			Duration: time.Millisecond,
			Properties: []Property{
				{Name: "depth_fixed_point", Value: "false"},
			},
		},
	}
	for _, step := range steps {
		collector.Add(step)
	}

	seq, err := collector.Freeze()
	if err != nil {
		// unreachable: the demo run is never empty
		panic(err)
	}
	return seq
}
