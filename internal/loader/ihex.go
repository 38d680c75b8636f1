package loader

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/marcinbor85/gohex"

	"ez80dis/internal/disasm"
)

// ErrBadHex reports a malformed Intel HEX record.
var ErrBadHex = errors.New("malformed Intel HEX")

const (
	recData        = 0x00
	recEOF         = 0x01
	recExtSegment  = 0x02
	recStartSeg    = 0x03
	recExtLinear   = 0x04
	recStartLinear = 0x05
)

// gapFill is written to addresses between records.
const gapFill = 0xFF

// looksLikeHex reports whether data starts with a record mark and contains
// only record characters.
func looksLikeHex(data []byte) bool {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != ':' {
		return false
	}
	for _, b := range data {
		switch {
		case b == ':' || b == '\r' || b == '\n':
		case b >= '0' && b <= '9', b >= 'A' && b <= 'F', b >= 'a' && b <= 'f':
		default:
			return false
		}
	}
	return true
}

// eofRecord ends a record stream that has none.
const eofRecord = ":00000001FF"

// ParseIntelHex decodes data records into one contiguous image starting at
// the lowest address. Gaps are filled with &FF. Extended segment and
// extended linear address records are honoured; start address records are
// ignored. Records after the end-of-file record are ignored, and a missing
// end-of-file record is tolerated.
func ParseIntelHex(data []byte) (*disasm.Image, error) {
	records, err := hexRecords(data)
	if err != nil {
		return nil, err
	}
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(bytes.NewReader(records)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHex, err)
	}
	return assemble(mem)
}

// hexRecords trims every line and cuts the stream after its end-of-file
// record, appending one when it is missing. Line numbers are preserved.
func hexRecords(data []byte) ([]byte, error) {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		out.Write(line)
		out.WriteByte('\n')
		if len(line) < 9 || line[0] != ':' {
			continue
		}
		var typ [1]byte
		if _, err := hex.Decode(typ[:], line[7:9]); err != nil {
			continue
		}
		switch typ[0] {
		case recEOF:
			return out.Bytes(), nil
		case recData, recExtSegment, recStartSeg, recExtLinear, recStartLinear:
		default:
			return nil, fmt.Errorf("line %d: record type %02X: %w", lineNo, typ[0], ErrBadHex)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	out.WriteString(eofRecord + "\n")
	return out.Bytes(), nil
}

func assemble(mem *gohex.Memory) (*disasm.Image, error) {
	segs := mem.GetDataSegments()
	if len(segs) == 0 {
		return disasm.NewImage(0, nil), nil
	}
	base := segs[0].Address
	last := segs[len(segs)-1]
	end := last.Address + uint32(len(last.Data))
	if end > MaxAddress+1 || end < last.Address {
		return nil, fmt.Errorf("&%X: %w", last.Address, ErrTooLarge)
	}
	return disasm.NewImage(base, mem.ToBinary(base, end-base, gapFill)), nil
}
