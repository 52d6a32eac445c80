package amqp

import (
	"encoding/json"
	"time"
)

// TransactionMessage is the ingest payload published by upstream bank
// connectors. Amount is a signed decimal string ("-12.50" or "-12,50");
// the worker parses and validates it before persisting.
type TransactionMessage struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	AccountName string    `json:"account_name,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// ToJSON converts the message to JSON bytes
func (m *TransactionMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionMessageFromJSON creates a message from JSON bytes
func TransactionMessageFromJSON(data []byte) (*TransactionMessage, error) {
	var msg TransactionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
