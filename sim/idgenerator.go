package sim

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs
type IDGenerator interface {
	// Generate an ID
	Generate() string
}

// NewSequentialIDGenerator creates an IDGenerator that generates decimal IDs
// counting up from start. The IDs are deterministic across runs.
func NewSequentialIDGenerator(start uint64) IDGenerator {
	return &sequentialIDGenerator{nextID: start}
}

// NewUniqueIDGenerator creates an IDGenerator that generates globally unique
// IDs. The IDs are not deterministic.
func NewUniqueIDGenerator() IDGenerator {
	return uniqueIDGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1) - 1
	id := strconv.FormatUint(idNumber, 10)

	return id
}

type uniqueIDGenerator struct {
}

func (g uniqueIDGenerator) Generate() string {
	return xid.New().String()
}
