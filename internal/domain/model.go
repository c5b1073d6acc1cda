package domain

// MessageModel is the GORM model for the messages table.
type MessageModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Text string `gorm:"type:text;not null"`
}

// TableName specifies the table name for MessageModel.
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts MessageModel to a domain Message.
func (m *MessageModel) ToDomain() *Message {
	return &Message{
		ID:   m.ID,
		Text: m.Text,
	}
}

// MessageToModel converts a domain Message to MessageModel.
func MessageToModel(msg *Message) *MessageModel {
	return &MessageModel{
		ID:   msg.ID,
		Text: msg.Text,
	}
}
