// Package memorymap describes the N64 virtual address space.
//
// The map is kept as three flat tables: segments (CPU address space
// partitions), regions (physical bus areas) and subregions (devices and
// memories). Containment is checked per tier, so the tables carry no
// parent/child links.
package memorymap

import "fmt"

// Kind identifies the tier of an entry.
type Kind int

const (
	Segment Kind = iota
	Region
	Subregion
)

func (k Kind) String() string {
	switch k {
	case Segment:
		return "segment"
	case Region:
		return "region"
	case Subregion:
		return "subregion"
	}
	return "undefined"
}

// Entry is one address range of the map. Both ends are inclusive.
type Entry struct {
	Start uint32
	End   uint32
	Code  string
	Name  string
	Kind  Kind
}

// Contains returns true if addr lies within the entry.
func (e Entry) Contains(addr uint32) bool {
	return addr >= e.Start && addr <= e.End
}

// OffsetOf returns the distance of addr from the start of the entry.
func (e Entry) OffsetOf(addr uint32) uint32 {
	return addr - e.Start
}

// Tag returns the short and long name of the entry.
func (e Entry) Tag() Tag {
	return Tag{Code: e.Code, Name: e.Name}
}

func (e Entry) String() string {
	return fmt.Sprintf("%08x-%08x %s (%s)", e.Start, e.End, e.Code, e.Name)
}

// Tag is the (code, name) pair reported for a matched entry.
type Tag struct {
	Code string
	Name string
}
