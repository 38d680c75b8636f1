package analysis

import "fmt"

// RangeDetector marks targets that fall inside the disassembled range.
type RangeDetector struct {
	Start, End uint32
}

func (r RangeDetector) Detect(targets []Target) []Target {
	for i := range targets {
		targets[i].Inside = targets[i].Addr >= r.Start && targets[i].Addr < r.End
	}
	return targets
}

// SymbolDetector labels targets that have a name in a symbol table.
type SymbolDetector struct {
	Names map[uint32]string
}

func (d SymbolDetector) Detect(targets []Target) []Target {
	for i := range targets {
		if name, ok := d.Names[targets[i].Addr]; ok {
			targets[i].Label = name
		}
	}
	return targets
}

// LabelDetector names each target by its kind: RST_38, SUB_040010, L_040020.
// Targets that already carry a label keep it.
type LabelDetector struct{}

func (LabelDetector) Detect(targets []Target) []Target {
	for i := range targets {
		t := &targets[i]
		if t.Label != "" {
			continue
		}
		switch t.Kind {
		case KindRestart:
			t.Label = fmt.Sprintf("RST_%02X", t.Addr&0xFF)
		case KindCall:
			t.Label = fmt.Sprintf("SUB_%06X", t.Addr)
		default:
			t.Label = fmt.Sprintf("L_%06X", t.Addr)
		}
	}
	return targets
}

// Labels indexes targets by address.
func Labels(targets []Target) map[uint32]string {
	m := make(map[uint32]string, len(targets))
	for _, t := range targets {
		m[t.Addr] = t.Label
	}
	return m
}
