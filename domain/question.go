// Package domain contains core concepts of the question report system.
// Question records are immutable once read from the store.
package domain

// QuestionRecord is one audience question asked during a presentation.
type QuestionRecord struct {
	ID         string  `json:"id"`
	RoomID     RoomID  `json:"roomId"`
	Slide      int     `json:"slide"`
	AudienceID *string `json:"audienceId,omitempty"`
	Content    string  `json:"content"`
	Ts         int64   `json:"ts"`
}
