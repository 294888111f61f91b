package models

// ActivityEvent is published to Kafka for every ledger mutation.
type ActivityEvent struct {
	EventID   string `json:"event_id"`            // Unique event id
	Timestamp int64  `json:"timestamp"`           // Unix seconds
	Username  string `json:"username"`            // Ledger key
	MuseumID  int    `json:"museum_id"`           // Museum the activity refers to
	Action    string `json:"action"`              // wishlist_add, wishlist_remove, visit, review, quiz_score
	Detail    string `json:"detail,omitempty"`    // Optional extra (e.g. quiz percentage)
}
