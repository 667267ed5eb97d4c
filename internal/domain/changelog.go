package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChangeLog is one append-only audit row. BeforeData and AfterData hold JSON
// snapshots of the entity; which of them is null depends on Action.
type ChangeLog struct {
	ID            uuid.UUID       `json:"id"                        db:"id"`
	EntityType    EntityType      `json:"entity_type"               db:"entity_type"`
	EntityID      uuid.UUID       `json:"entity_id"                 db:"entity_id"`
	Action        ChangeAction    `json:"action"                    db:"action"`
	BeforeData    json.RawMessage `json:"before_data"               db:"before_data"`
	AfterData     json.RawMessage `json:"after_data"                db:"after_data"`
	ChangedBy     *uuid.UUID      `json:"changed_by"                db:"changed_by"`
	ChangedByName *string         `json:"changed_by_name,omitempty" db:"changed_by_name"`
	ChangedAt     time.Time       `json:"changed_at"                db:"changed_at"`
}

// Validate enforces the snapshot shape per action: created has no before,
// deleted has no after, updated has both.
func (c *ChangeLog) Validate() error {
	if !c.EntityType.IsValid() {
		return NewValidationError("entity_type", fmt.Sprintf("unknown entity type %q", c.EntityType))
	}
	if c.EntityID == uuid.Nil {
		return NewValidationError("entity_id", "is required")
	}

	hasBefore := !isNullJSON(c.BeforeData)
	hasAfter := !isNullJSON(c.AfterData)

	switch c.Action {
	case ChangeActionCreated:
		if hasBefore || !hasAfter {
			return NewValidationError("action", "created requires after only")
		}
	case ChangeActionUpdated:
		if !hasBefore || !hasAfter {
			return NewValidationError("action", "updated requires before and after")
		}
	case ChangeActionDeleted:
		if !hasBefore || hasAfter {
			return NewValidationError("action", "deleted requires before only")
		}
	default:
		return NewValidationError("action", fmt.Sprintf("unknown action %q", c.Action))
	}
	return nil
}

func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// ChangeLogFilter narrows the audit list. Zero values mean "no filter";
// Limit 0 means unlimited.
type ChangeLogFilter struct {
	EntityType *EntityType
	EntityID   *uuid.UUID
	Limit      int
	Offset     int
}

// ActivityPageSize caps the project activity feed.
const ActivityPageSize = 20
