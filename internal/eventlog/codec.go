package eventlog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	id "welfare/pkg/domain"
)

// wireEntry is the JSON shape published to Kafka.
type wireEntry struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description"`
	EntityType  string `json:"entity_type,omitempty"`
	EntityID    string `json:"entity_id,omitempty"`
	IPAddress   string `json:"ip_address,omitempty"`
	Device      string `json:"device,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// Marshal encodes an entry for publication.
func Marshal(e *Entry) ([]byte, error) {
	w := wireEntry{
		ID:          e.ID.String(),
		Type:        string(e.Type),
		Description: e.Description,
		EntityType:  string(e.EntityType),
		IPAddress:   e.IPAddress,
		UserAgent:   e.UserAgent,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.UserAgent != "" {
		w.Device = e.Device()
	}
	if e.UserID != nil {
		w.UserID = e.UserID.String()
	}
	if e.EntityID != nil {
		w.EntityID = e.EntityID.String()
	}
	return json.Marshal(w)
}

// Unmarshal decodes a published entry.
func Unmarshal(data []byte) (*Entry, error) {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	entryID, err := id.ParseEventID(w.ID)
	if err != nil {
		return nil, fmt.Errorf("decode event id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode event time: %w", err)
	}

	e := &Entry{
		ID:          entryID,
		Type:        Type(w.Type),
		Description: w.Description,
		EntityType:  EntityType(w.EntityType),
		IPAddress:   w.IPAddress,
		UserAgent:   w.UserAgent,
		CreatedAt:   createdAt,
	}
	if w.UserID != "" {
		userID, err := id.ParseUserID(w.UserID)
		if err != nil {
			return nil, fmt.Errorf("decode event user: %w", err)
		}
		e.UserID = &userID
	}
	if w.EntityID != "" {
		entityID, err := uuid.Parse(w.EntityID)
		if err != nil {
			return nil, fmt.Errorf("decode event entity: %w", err)
		}
		e.EntityID = &entityID
	}
	return e, nil
}
