package probe

import "strings"

// Role indicates the author of a message.
type Role string

const (
	// RoleUser indicates the message is authored by the user.
	RoleUser Role = "user"
	// RoleSystem indicates the message carries system instructions.
	RoleSystem Role = "system"
	// RoleAssistant indicates the message is authored by the model.
	RoleAssistant Role = "assistant"
)

// Part is a piece of message content.
type Part interface {
	isPart()
}

// TextPart is plain text content.
type TextPart struct {
	Text string `json:"text"`
}

// DataPart is inline binary content such as an image produced by the model.
type DataPart struct {
	Name     string   `json:"name,omitempty"`
	Bytes    []byte   `json:"bytes"`
	MIMEType MIMEType `json:"mimeType"`
}

func (TextPart) isPart() {}
func (DataPart) isPart() {}

// Message is a single turn of a conversation.
type Message struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// UserMessage creates a user message with a single text part.
func UserMessage(text string) *Message {
	return &Message{Role: RoleUser, Parts: []Part{TextPart{Text: text}}}
}

// SystemMessage creates a system message with a single text part.
func SystemMessage(text string) *Message {
	return &Message{Role: RoleSystem, Parts: []Part{TextPart{Text: text}}}
}

// Text returns the concatenation of all text parts.
func (m *Message) Text() string {
	if m == nil {
		return ""
	}
	var buf strings.Builder
	for _, part := range m.Parts {
		if text, ok := part.(TextPart); ok {
			buf.WriteString(text.Text)
		}
	}
	return buf.String()
}

