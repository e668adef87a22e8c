package memory

import (
	"fmt"
	"os"
)

// Kind says how a bank responds to the bus.
type Kind uint8

const (
	// KindRAM banks store writes and serve reads from their storage.
	KindRAM Kind = iota + 1
	// KindROM banks serve reads from their storage and silently ignore
	// writes.
	KindROM
	// KindHandler banks dispatch reads and writes to callbacks. Handlers
	// may mutate peripheral state on either operation.
	KindHandler
)

// Bank is a contiguous, page-aligned region of the address space backed by
// storage or by handler callbacks.
type Bank struct {
	id     string
	kind   Kind
	lo, hi uint16
	data   []uint8

	onRead  func(addr uint16) (uint8, error)
	onWrite func(addr uint16, value uint8) error
}

func newBank(id string, kind Kind, lo, hi uint16) (*Bank, error) {
	if id == "" {
		return nil, fmt.Errorf("memory: bank id must be non-empty")
	}
	if lo&0xFF != 0 || hi&0xFF != 0xFF || hi < lo {
		return nil, fmt.Errorf("memory: bank %q range %04X-%04X is not page aligned", id, lo, hi)
	}
	return &Bank{id: id, kind: kind, lo: lo, hi: hi}, nil
}

// NewRAM returns a zero-filled RAM bank covering [lo, hi].
func NewRAM(id string, lo, hi uint16) (*Bank, error) {
	b, err := newBank(id, KindRAM, lo, hi)
	if err != nil {
		return nil, err
	}
	b.data = make([]uint8, int(hi)-int(lo)+1)
	return b, nil
}

// NewROM returns a ROM bank covering [lo, hi] populated from image. The
// image must fit the range; a shorter image leaves the tail zero-filled.
func NewROM(id string, lo, hi uint16, image []uint8) (*Bank, error) {
	b, err := newBank(id, KindROM, lo, hi)
	if err != nil {
		return nil, err
	}
	size := int(hi) - int(lo) + 1
	if len(image) > size {
		return nil, fmt.Errorf("memory: bank %q image is %d bytes, range holds %d", id, len(image), size)
	}
	b.data = make([]uint8, size)
	copy(b.data, image)
	return b, nil
}

// NewHandler returns a bank whose reads and writes invoke callbacks. A nil
// read callback reads as zero; a nil write callback ignores writes.
func NewHandler(id string, lo, hi uint16, read func(uint16) (uint8, error), write func(uint16, uint8) error) (*Bank, error) {
	b, err := newBank(id, KindHandler, lo, hi)
	if err != nil {
		return nil, err
	}
	b.onRead = read
	b.onWrite = write
	return b, nil
}

// ID returns the bank's identifier.
func (b *Bank) ID() string { return b.id }

// Kind returns the bank's kind.
func (b *Bank) Kind() Kind { return b.kind }

// Range returns the bank's address range.
func (b *Bank) Range() (lo, hi uint16) { return b.lo, b.hi }

// Load copies data into the bank's storage starting at origin, which is an
// absolute address within the bank's range. Handler banks have no storage.
func (b *Bank) Load(origin uint16, data []uint8) error {
	if b.kind == KindHandler {
		return fmt.Errorf("memory: bank %q has no storage", b.id)
	}
	if origin < b.lo || int(origin)+len(data)-1 > int(b.hi) {
		return fmt.Errorf("memory: image %04X+%d outside bank %q (%04X-%04X)",
			origin, len(data), b.id, b.lo, b.hi)
	}
	copy(b.data[origin-b.lo:], data)
	return nil
}

func (b *Bank) read(addr uint16) (uint8, error) {
	if b.kind == KindHandler {
		if b.onRead == nil {
			return 0, nil
		}
		return b.onRead(addr)
	}
	return b.data[addr-b.lo], nil
}

func (b *Bank) write(addr uint16, value uint8) error {
	switch b.kind {
	case KindRAM:
		b.data[addr-b.lo] = value
	case KindROM:
		// Writes to ROM are silently ignored.
	case KindHandler:
		if b.onWrite != nil {
			return b.onWrite(addr, value)
		}
	}
	return nil
}

// ReadImageFile reads a raw, headerless memory image of at most 64 KiB.
func ReadImageFile(path string) ([]uint8, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memory: couldn't read image: %w", err)
	}
	if len(data) > 0x10000 {
		return nil, fmt.Errorf("memory: image %s is %d bytes, max is 65536", path, len(data))
	}
	return data, nil
}
