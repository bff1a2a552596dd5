package mem

import "fmt"

// An AddrRange is a contiguous range of physical addresses.
type AddrRange struct {
	Start uint64
	Size  uint64
}

// End returns the first address after the range.
func (r AddrRange) End() uint64 {
	return r.Start + r.Size
}

// Contains checks if the address falls in the range.
func (r AddrRange) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End()
}

func (r AddrRange) String() string {
	return fmt.Sprintf("[%#x:%#x)", r.Start, r.End())
}
