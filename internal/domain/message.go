package domain

// Message is a single note posted to the board. Messages are immutable
// once created; there is no update or delete path.
type Message struct {
	ID   uint
	Text string
}

// MessageResponse is the JSON shape for a message.
type MessageResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// ToResponse converts a Message to its response shape.
func (m *Message) ToResponse() MessageResponse {
	return MessageResponse{
		ID:   m.ID,
		Text: m.Text,
	}
}
