package analysis

import (
	"log/slog"
	"sort"

	"ez80dis/internal/disasm"
)

// CollectTargets returns every branch target in s sorted by address.
// A target referenced both as a jump and a call is reported as the
// strongest kind (restart, then call, then jump). Refs are sorted.
func CollectTargets(s disasm.Stream) []Target {
	byAddr := make(map[uint32]*Target)
	for _, inst := range s {
		if inst.Flow == disasm.FlowNone {
			continue
		}
		k := kindOf(inst)
		t, ok := byAddr[inst.Target]
		if !ok {
			t = &Target{Addr: inst.Target, Kind: k}
			byAddr[inst.Target] = t
		}
		if k > t.Kind {
			t.Kind = k
		}
		t.Refs = append(t.Refs, inst.Addr)
	}

	out := make([]Target, 0, len(byAddr))
	for _, t := range byAddr {
		sort.Slice(t.Refs, func(i, j int) bool { return t.Refs[i] < t.Refs[j] })
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	slog.Debug("collected targets", "count", len(out), "instructions", len(s))
	return out
}

// Analyze collects the targets of s and runs the default detectors: range
// marking for [start, end), symbol names, then generated labels for the
// rest. symbols may be nil.
func Analyze(s disasm.Stream, start, end uint32, symbols map[uint32]string) []Target {
	chain := NewDetectorChain(
		RangeDetector{Start: start, End: end},
		SymbolDetector{Names: symbols},
		LabelDetector{},
	)
	return chain.Detect(CollectTargets(s))
}
