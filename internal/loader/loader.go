// Package loader reads program images from disk. Raw binaries, ELF
// executables, Intel HEX files, gzip streams and zip archives (first entry)
// are recognised by content.
package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"ez80dis/internal/disasm"
	"ez80dis/internal/elfx"
)

// Format identifies how a file was decoded.
type Format int

const (
	FormatRaw Format = iota
	FormatGzip
	FormatZip
	FormatIntelHex
	FormatELF
)

func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatZip:
		return "zip"
	case FormatIntelHex:
		return "ihex"
	case FormatELF:
		return "elf"
	default:
		return "raw"
	}
}

// MaxAddress is the last byte of the 24-bit address space.
const MaxAddress = 0xFFFFFF

var (
	ErrEmptyArchive = errors.New("zip archive is empty")
	ErrTooLarge     = errors.New("image exceeds the 24-bit address space")
)

// File is a loaded image with the symbols found in it, if any.
type File struct {
	Image   *disasm.Image
	Format  Format
	Symbols map[uint32]string
}

// Load reads path and returns its image. Raw contents are placed at base;
// ELF and Intel HEX files carry their own addresses and base is ignored.
// Compressed contents are unwrapped first.
func Load(path string, base uint32) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, base, path)
}

// Decode is Load for data already in memory. name is only used in log
// messages and errors.
func Decode(data []byte, base uint32, name string) (*File, error) {
	data, format, err := unwrap(data, name)
	if err != nil {
		return nil, err
	}
	// The container format wins over the inner one when reporting.
	inner := func(f Format) Format {
		if format == FormatRaw {
			return f
		}
		return format
	}

	switch {
	case elfx.IsELF(data):
		im, err := elfx.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		b, flat := im.Flatten(gapFill)
		slog.Debug("Loaded ELF", "file", name, "base", fmt.Sprintf("&%06X", b), "size", len(flat),
			"segments", len(im.Segments), "symbols", len(im.Symbols))
		return &File{Image: disasm.NewImage(b, flat), Format: inner(FormatELF), Symbols: im.SymbolMap()}, nil

	case looksLikeHex(data):
		img, err := ParseIntelHex(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		slog.Debug("Loaded Intel HEX", "file", name, "base", fmt.Sprintf("&%06X", img.Base), "size", len(img.Data))
		return &File{Image: img, Format: inner(FormatIntelHex)}, nil
	}

	if uint64(base)+uint64(len(data)) > MaxAddress+1 {
		return nil, fmt.Errorf("%s: %d bytes at &%06X: %w", name, len(data), base, ErrTooLarge)
	}
	slog.Debug("Loaded image", "file", name, "format", format, "base", fmt.Sprintf("&%06X", base), "size", len(data))
	return &File{Image: disasm.NewImage(base, data), Format: format}, nil
}

// unwrap removes one layer of gzip or zip compression.
func unwrap(data []byte, name string) ([]byte, Format, error) {
	if len(data) < 2 {
		return data, FormatRaw, nil
	}

	if data[0] == 0x1f && data[1] == 0x8b {
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, FormatGzip, fmt.Errorf("%s: gzip reader: %w", name, err)
		}
		defer reader.Close()
		out, err := io.ReadAll(reader)
		if err != nil {
			return nil, FormatGzip, fmt.Errorf("%s: gzip: %w", name, err)
		}
		slog.Debug("Decompressed gzip", "file", name, "compressed", len(data), "size", len(out))
		return out, FormatGzip, nil
	}

	if isZip(data) {
		reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, FormatZip, fmt.Errorf("%s: zip reader: %w", name, err)
		}
		if len(reader.File) == 0 {
			return nil, FormatZip, fmt.Errorf("%s: %w", name, ErrEmptyArchive)
		}
		file := reader.File[0]
		rc, err := file.Open()
		if err != nil {
			return nil, FormatZip, fmt.Errorf("%s: open %s: %w", name, file.Name, err)
		}
		defer rc.Close()
		out, err := io.ReadAll(rc)
		if err != nil {
			return nil, FormatZip, fmt.Errorf("%s: read %s: %w", name, file.Name, err)
		}
		slog.Debug("Extracted zip entry", "file", name, "entry", file.Name, "size", len(out))
		return out, FormatZip, nil
	}

	return data, FormatRaw, nil
}

// isZip matches a local file header or the end record of an empty archive.
func isZip(data []byte) bool {
	if len(data) < 4 || data[0] != 'P' || data[1] != 'K' {
		return false
	}
	return (data[2] == 3 && data[3] == 4) || (data[2] == 5 && data[3] == 6)
}
