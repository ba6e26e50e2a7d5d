package snapshot

import (
	"fmt"
	"time"

	"matchcore/domain/orderbook"
)

const formatVersion = 1

type Snapshot struct {
	Version int
	Seq     uint64
	Created time.Time
	State   orderbook.State
}

const filePattern = "snapshot-%020d.gob"

func fileName(seq uint64) string {
	return fmt.Sprintf(filePattern, seq)
}
