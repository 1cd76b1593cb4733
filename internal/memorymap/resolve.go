package memorymap

import (
	"fmt"
	"strings"
)

// PhysicalMask removes the segment bits (cached/uncached access) from a
// virtual address, leaving the physical bus address.
const PhysicalMask = uint32(0x1FFFFFFF)

// Location describes where an address sits in the memory map. Segment and
// Region are nil if no entry of that tier contains the address.
type Location struct {
	VirtualAddress  uint32
	PhysicalAddress uint32
	Segment         *Tag
	Region          *Tag
	Subregions      []Tag
}

// Resolve returns the location of the virtual address. Segments are matched
// against the virtual address, regions and subregions against the physical
// address.
//
// Segment and region ranges do not overlap. Should they ever do so the first
// declared entry is the one reported.
func Resolve(address uint32) Location {
	phys := address & PhysicalMask

	loc := Location{
		VirtualAddress:  address,
		PhysicalAddress: phys,
		Segment:         first(segments, address),
		Region:          first(regions, phys),
		Subregions:      []Tag{},
	}

	for _, e := range subregions {
		if e.Contains(phys) {
			loc.Subregions = append(loc.Subregions, e.Tag())
		}
	}

	return loc
}

func first(entries []Entry, addr uint32) *Tag {
	for _, e := range entries {
		if e.Contains(addr) {
			t := e.Tag()
			return &t
		}
	}
	return nil
}

// Mapped returns true if both a segment and a region were found.
func (l Location) Mapped() bool {
	return l.Segment != nil && l.Region != nil
}

// Label is the short form of the location, sized for a narrow trace column.
// For example, 0xa40005f0 is labelled "1G.RSPD". A missing segment or region
// is shown as "?".
func (l Location) Label() string {
	seg := "?"
	if l.Segment != nil {
		seg = l.Segment.Code
	}
	reg := "?"
	if l.Region != nil {
		reg = l.Region.Code
	}

	codes := make([]string, len(l.Subregions))
	for i, s := range l.Subregions {
		codes[i] = s.Code
	}

	return strings.ToUpper(fmt.Sprintf("%s%s.%s", seg, reg, strings.Join(codes, ".")))
}

func (l Location) String() string {
	return fmt.Sprintf("%s 0x%08x", l.Label(), l.VirtualAddress)
}
