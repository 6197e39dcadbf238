package domain

import "time"

// AuditEntry records a mutation performed through the API: who did what to
// which record. Entries are written asynchronously and never block the
// request that produced them.
type AuditEntry struct {
	Actor     string    `json:"actor" bson:"actor"`
	Action    string    `json:"action" bson:"action"`
	Entity    string    `json:"entity" bson:"entity"`
	EntityKey string    `json:"entity_key" bson:"entity_key"`
	At        time.Time `json:"at" bson:"at"`
}
