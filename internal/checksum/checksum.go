package checksum

import (
	"fmt"
	"hash/fnv"
)

// Content computes an 8-character hex FNV-1a digest of data.
// The watcher uses it to tell real edits from editor save noise.
func Content(data []byte) string {
	h := fnv.New32a()
	h.Write(data)
	return fmt.Sprintf("%08x", h.Sum32())
}
