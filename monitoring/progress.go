package monitoring

import (
	"encoding/json"
	"sync"
	"time"
)

// A ProgressBar tracks how many steps of a run have finished.
type ProgressBar struct {
	lock sync.Mutex

	id        string
	name      string
	startTime time.Time
	total     uint64
	finished  uint64
	status    string
}

// Advance marks one more step as finished and sets the status text.
func (b *ProgressBar) Advance(status string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.finished < b.total {
		b.finished++
	}

	b.status = status
}

// Done tells if all steps have finished.
func (b *ProgressBar) Done() bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.finished >= b.total
}

// MarshalJSON takes a consistent snapshot of the bar.
func (b *ProgressBar) MarshalJSON() ([]byte, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	return json.Marshal(struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		StartTime time.Time `json:"start_time"`
		Total     uint64    `json:"total"`
		Finished  uint64    `json:"finished"`
		Status    string    `json:"status"`
	}{b.id, b.name, b.startTime, b.total, b.finished, b.status})
}
