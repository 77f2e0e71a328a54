package service

import (
	"context"
	"encoding/json"
	"log"
	"reflect"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// auditor appends audit entries for mutating entity operations.
// Recording is best-effort: a failed write is logged and never fails the
// business operation it describes.
type auditor struct {
	repo repository.AuditRepository
}

func (a *auditor) record(ctx context.Context, eventType domain.AuditEventType, collection string, documentID uuid.UUID, changes datatypes.JSON) {
	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		EventType:  eventType,
		Collection: collection,
		DocumentID: documentID,
		Changes:    changes,
	}
	if actor, ok := ActorFromContext(ctx); ok {
		actorID := actor.UserID
		entry.UserID = &actorID
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		log.Printf("ERROR [audit.record] failed to save %s entry for %s/%s: %v", eventType, collection, documentID, err)
	}
}

// diffChanges computes a field-level before/after diff over the JSON
// representations of two entity snapshots.
func diffChanges(before, after any) datatypes.JSON {
	beforeMap := toJSONMap(before)
	afterMap := toJSONMap(after)

	changes := map[string]any{}
	for field, afterVal := range afterMap {
		if !reflect.DeepEqual(beforeMap[field], afterVal) {
			changes[field] = map[string]any{
				"from": beforeMap[field],
				"to":   afterVal,
			}
		}
	}

	raw, err := json.Marshal(changes)
	if err != nil {
		return nil
	}
	return raw
}

func toJSONMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
