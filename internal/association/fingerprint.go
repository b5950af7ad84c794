package association

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/pixil98/go-questmap/internal/game"
)

// Fingerprint checksums the parts of a task log that drive association: the
// task count, and each task's id and completion flag, in order.
func Fingerprint(tasks []game.Task) uint64 {
	d := xxhash.New()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(tasks)))
	_, _ = d.Write(buf[:])

	for _, t := range tasks {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(t.Id)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(t.Id)
		if t.Completed {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
	}

	return d.Sum64()
}
