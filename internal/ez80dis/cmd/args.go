package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ez80dis/internal/disasm"
	"ez80dis/internal/loader"
)

// ErrBadLiteral reports a numeric argument that is not a decimal or
// &-prefixed hexadecimal literal, or is out of range.
var ErrBadLiteral = errors.New("bad numeric literal")

// ParseNumber parses a decimal literal or a hexadecimal one prefixed with &.
func ParseNumber(s string) (int64, error) {
	base := 10
	digits := s
	if strings.HasPrefix(digits, "&") {
		base = 16
		digits = digits[1:]
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadLiteral)
	}
	return v, nil
}

// parseAddress parses a literal that must fit the 24-bit address space.
func parseAddress(name, s string) (uint32, error) {
	v, err := ParseNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if v < 0 || v > loader.MaxAddress {
		return 0, fmt.Errorf("%s: %q out of range: %w", name, s, ErrBadLiteral)
	}
	return uint32(v), nil
}

// request is a fully resolved disassembly run.
type request struct {
	Path   string
	Start  uint32
	Length int
	Width  disasm.Width
	Base   uint32
	JSON   bool
	TUI    bool
	Color  bool
	Theme  string
}

// parseArgs resolves the positional arguments <file> <address> <length>
// [adl]. defaultWidth applies when adl is omitted.
func parseArgs(args []string, defaultWidth disasm.Width) (request, error) {
	req := request{Path: args[0], Width: defaultWidth}

	start, err := parseAddress("address", args[1])
	if err != nil {
		return req, err
	}
	req.Start = start

	length, err := parseAddress("length", args[2])
	if err != nil {
		return req, err
	}
	req.Length = int(length)

	if len(args) > 3 {
		v, err := ParseNumber(args[3])
		if err != nil {
			return req, fmt.Errorf("adl: %w", err)
		}
		w, err := disasm.ParseWidth(v)
		if err != nil {
			return req, fmt.Errorf("adl: %v: %w", err, ErrBadLiteral)
		}
		req.Width = w
	}
	return req, nil
}
