package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ez80dis/internal/analysis"
	"ez80dis/internal/disasm"
)

// JSONOutput is the --json document, used for regression testing.
type JSONOutput struct {
	Mode         string            `json:"mode"`
	Start        string            `json:"start"`
	Instructions []JSONInstruction `json:"instructions"`
	Targets      []JSONTarget      `json:"targets"`
}

// JSONInstruction is one decoded instruction.
type JSONInstruction struct {
	Address   string `json:"address"`
	Bytes     string `json:"bytes"`
	Text      string `json:"text"`
	Suffix    string `json:"suffix,omitempty"`
	Registers string `json:"registers,omitempty"`
	Target    string `json:"target,omitempty"`
}

// JSONTarget is one branch target with the instructions that reach it.
type JSONTarget struct {
	Address string   `json:"address"`
	Kind    string   `json:"kind"`
	Label   string   `json:"label"`
	Inside  bool     `json:"inside"`
	Refs    []string `json:"refs"`
}

func addr(a uint32) string {
	return fmt.Sprintf("&%06X", a)
}

func newJSONOutput(req request, s disasm.Stream, targets []analysis.Target) JSONOutput {
	out := JSONOutput{
		Mode:         req.Width.String(),
		Start:        addr(req.Start),
		Instructions: make([]JSONInstruction, 0, len(s)),
		Targets:      make([]JSONTarget, 0, len(targets)),
	}
	for _, in := range s {
		hex := make([]string, len(in.Raw))
		for i, b := range in.Raw {
			hex[i] = fmt.Sprintf("%02X", b)
		}
		ji := JSONInstruction{
			Address: addr(in.Addr),
			Bytes:   strings.Join(hex, " "),
			Text:    in.Text,
			Suffix:  in.Suffix.String(),
		}
		if in.Registers != disasm.RegsHL {
			ji.Registers = in.Registers.String()
		}
		if in.Flow != disasm.FlowNone {
			ji.Target = addr(in.Target)
		}
		out.Instructions = append(out.Instructions, ji)
	}
	for _, t := range targets {
		jt := JSONTarget{
			Address: t.Address(),
			Kind:    t.Kind.String(),
			Label:   t.Label,
			Inside:  t.Inside,
			Refs:    make([]string, len(t.Refs)),
		}
		for i, r := range t.Refs {
			jt.Refs[i] = addr(r)
		}
		out.Targets = append(out.Targets, jt)
	}
	return out
}

func writeJSON(w io.Writer, req request, s disasm.Stream, targets []analysis.Target) error {
	jsonData, err := json.MarshalIndent(newJSONOutput(req, s, targets), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
