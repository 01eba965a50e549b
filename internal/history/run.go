package history

import (
	"time"

	"github.com/google/uuid"
)

// fetchRun tracks a single Fetch call for logging purposes: when it started,
// how many pages and records it read, and how it ended.
type fetchRun struct {
	id           string     // Unique identifier for this run (UUIDv7)
	startedAt    time.Time  // When the run started
	pages        uint32     // Number of history pages read
	transactions int        // Number of records accumulated so far
	finishedAt   *time.Time // When the run ended (nil while running)
	err          error      // Error that ended the run, if any
}

// newFetchRun creates a running fetchRun with a fresh id.
func newFetchRun() *fetchRun {
	return &fetchRun{
		id:        uuid.Must(uuid.NewV7()).String(),
		startedAt: time.Now().UTC(),
	}
}

// recordPage accounts for one history page of n records.
// It is a no-op once the run is finished.
func (r *fetchRun) recordPage(n int) {
	if r.finishedAt != nil {
		return
	}

	r.pages++
	r.transactions += n
}

// finish ends the run with the given error (nil on success).
// Only the first call has an effect.
func (r *fetchRun) finish(err error) {
	if r.finishedAt != nil {
		return
	}

	now := time.Now().UTC()
	r.finishedAt = &now
	r.err = err
}

// logFields returns the run summary as logger key/value pairs.
func (r *fetchRun) logFields() []any {
	fields := []any{
		"run.pages", r.pages,
		"run.transactions", r.transactions,
	}

	if r.finishedAt != nil {
		fields = append(fields, "run.duration", r.finishedAt.Sub(r.startedAt).String())
	}

	if r.err != nil {
		fields = append(fields, "run.error", r.err.Error())
	}

	return fields
}
