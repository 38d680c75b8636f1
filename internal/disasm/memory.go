package disasm

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when decoding reads outside the readable memory.
var ErrOutOfRange = errors.New("address out of range")

// Memory is an addressable byte stream. The decoder only reads forward from
// the current cursor.
type Memory interface {
	ByteAt(addr uint32) (byte, error)
}

// Image is a flat memory segment holding Data at Base.
type Image struct {
	Base uint32
	Data []byte
}

// NewImage returns an image of data loaded at base.
func NewImage(base uint32, data []byte) *Image {
	return &Image{Base: base, Data: data}
}

// ByteAt implements Memory.
func (im *Image) ByteAt(addr uint32) (byte, error) {
	if addr < im.Base || uint64(addr-im.Base) >= uint64(len(im.Data)) {
		return 0, fmt.Errorf("read &%06X: %w", addr, ErrOutOfRange)
	}
	return im.Data[addr-im.Base], nil
}

// End returns the first address past the image.
func (im *Image) End() uint32 {
	return im.Base + uint32(len(im.Data))
}

// Contains reports whether addr lies inside the image.
func (im *Image) Contains(addr uint32) bool {
	return addr >= im.Base && addr < im.End()
}
