package calendar

import (
	"encoding/binary"
	"hash/fnv"
)

// palette is the fixed set of event colors. Assignment is keyed on resource
// id through FNV-1a, so a resource keeps its color no matter how the list is
// ordered or reloaded.
var palette = []string{
	"#1976d2", // blue
	"#388e3c", // green
	"#f57c00", // orange
	"#7b1fa2", // purple
	"#00796b", // teal
	"#c2185b", // pink
	"#5d4037", // brown
	"#455a64", // blue grey
}

// neutralColor is the fallback when the resource reference cannot be
// resolved against the catalog.
const neutralColor = "#9e9e9e"

func colorForResource(resourceID int64) string {
	h := fnv.New32a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(resourceID))
	h.Write(buf[:])
	return palette[h.Sum32()%uint32(len(palette))]
}
