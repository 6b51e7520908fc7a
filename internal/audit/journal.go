// Package audit records state-mutating user actions to the audit journal.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/fentz26/taskmemo/internal/store"
)

// Action names written to the journal.
const (
	ActionTaskAdd     = "task.add"
	ActionTaskRemove  = "task.remove"
	ActionHistoryUndo = "history.undo"
	ActionHistoryRedo = "history.redo"
)

// Recorder accepts action records.
type Recorder interface {
	Record(action string, inputs interface{}, outcome, details string) error
}

// Journal writes action records for one user to a store.
type Journal struct {
	store    *store.Store
	username string
}

// NewJournal creates a journal for username backed by s.
func NewJournal(s *store.Store, username string) *Journal {
	return &Journal{store: s, username: username}
}

// Record writes an action record.
func (j *Journal) Record(action string, inputs interface{}, outcome, details string) error {
	_, err := j.store.WriteAction(j.username, action, hashInputs(inputs), outcome, details)
	return err
}

// Nop discards every record. Used when no audit database is configured.
type Nop struct{}

// Record does nothing.
func (Nop) Record(string, interface{}, string, string) error { return nil }

// hashInputs creates a SHA256 hash of the inputs for reproducibility.
func hashInputs(inputs interface{}) string {
	data, err := json.Marshal(inputs)
	if err != nil {
		return "hash_error"
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
