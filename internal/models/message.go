package models

// Message is the only persisted entity. Messages are immutable once stored
// and carry no sender identity.
type Message struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}
