package domain

// OutcomeStatus classifies what happened to one catalog asset during a run.
type OutcomeStatus string

const (
	// OutcomeCreated means a new media record was inserted.
	OutcomeCreated OutcomeStatus = "created"
	// OutcomeUpdated means an existing record was updated in place.
	OutcomeUpdated OutcomeStatus = "updated"
	// OutcomeUnreachable means both the primary and fallback probes failed.
	OutcomeUnreachable OutcomeStatus = "unreachable"
	// OutcomePersistenceError means the probe succeeded but the
	// find/create/update step failed.
	OutcomePersistenceError OutcomeStatus = "persistence-error"
)

// AssetOutcome records the result of processing one asset. Err is set only
// for the skipped variants.
type AssetOutcome struct {
	Filename string
	Status   OutcomeStatus
	RecordID string
	URL      string
	Err      error
}

// Succeeded reports whether the asset ended up with a persisted record.
func (o AssetOutcome) Succeeded() bool {
	return o.Status == OutcomeCreated || o.Status == OutcomeUpdated
}
