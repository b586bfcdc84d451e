package maxapi

import "encoding/json"

// Update types delivered by the MAX Bot API long-poll endpoint.
const (
	UpdateMessageCreated = "message_created"
	UpdateBotStarted     = "bot_started"
)

// Update is one envelope from GET /updates.
type Update struct {
	UpdateType string       `json:"update_type"`
	Message    *Message     `json:"message,omitempty"`
	UserID     int64        `json:"user_id,omitempty"`
	User       *UserProfile `json:"user,omitempty"`
	Timestamp  int64        `json:"timestamp,omitempty"`
}

// Message is the message_created payload.
type Message struct {
	Sender    *UserProfile `json:"sender,omitempty"`
	From      *UserProfile `json:"from,omitempty"`
	Recipient *Recipient   `json:"recipient,omitempty"`
	Chat      *ChatRef     `json:"chat,omitempty"`
	Body      MessageBody  `json:"body"`
}

// UserProfile identifies a MAX user inside updates and messages.
type UserProfile struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Recipient carries the chat the message was posted to.
type Recipient struct {
	ChatID int64 `json:"chat_id,omitempty"`
}

// ChatRef is the fallback chat reference some update shapes carry.
type ChatRef struct {
	ID int64 `json:"id,omitempty"`
}

// MessageBody holds the actual message content.
type MessageBody struct {
	Text string `json:"text"`
}

// updatesResponse is the wire shape of GET /updates.
type updatesResponse struct {
	Updates []Update `json:"updates"`
	Marker  int64    `json:"marker"`
}

// sendMessageRequest is the wire shape of POST /messages.
type sendMessageRequest struct {
	Text        string       `json:"text"`
	Notify      bool         `json:"notify"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a message attachment. Only images are used here.
type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload wraps the photos structure returned by the upload flow.
type AttachmentPayload struct {
	Photos json.RawMessage `json:"photos,omitempty"`
	Token  string          `json:"token,omitempty"`
}

// uploadURLResponse is the wire shape of POST /uploads.
type uploadURLResponse struct {
	URL string `json:"url"`
}

// uploadResultResponse is what the upload host returns after the file POST.
type uploadResultResponse struct {
	Photos json.RawMessage `json:"photos,omitempty"`
	Token  string          `json:"token,omitempty"`
}
