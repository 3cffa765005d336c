package amqp

import (
	"encoding/json"
	"time"
)

// DocumentSavedMessage notifies that a new revision of the document has
// been committed. It carries only the revision number; consumers read the
// current document from the shared medium themselves.
type DocumentSavedMessage struct {
	Revision  int64     `json:"revision"`
	Timestamp time.Time `json:"timestamp"`
}

func NewDocumentSavedMessage(revision int64) *DocumentSavedMessage {
	return &DocumentSavedMessage{
		Revision:  revision,
		Timestamp: time.Now(),
	}
}

func (m *DocumentSavedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func DocumentSavedMessageFromJSON(data []byte) (*DocumentSavedMessage, error) {
	var msg DocumentSavedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
