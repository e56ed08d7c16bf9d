package models

import "time"

const DefaultAuthor = "Anonymous"

type ChatMessage struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *ChatMessage) Canonicalize() {
	if m.Author == "" {
		m.Author = DefaultAuthor
	}
	m.Timestamp = m.Timestamp.UTC()
}
