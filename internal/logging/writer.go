package logging

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/leg100/hub/internal/resource"
)

// maxMessages is the number of messages retained in memory.
const maxMessages = 1000

// Message is the event payload for a log message
type Message struct {
	Time       time.Time
	Level      string
	Message    string `json:"msg"`
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger it
	// was emitted from). The higher the Serial number the newer the message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// writer is a slog TextHandler writer that both keeps the most recent log
// records in memory and emits them as events.
type writer struct {
	messages []Message
	mu       sync.Mutex

	broker resource.Publisher[Message]
	serial uint
}

func (w *writer) Write(p []byte) (int, error) {
	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: w.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
		w.serial++
	}
	if d.Err() != nil {
		return 0, d.Err()
	}

	w.mu.Lock()
	w.messages = append(w.messages, msgs...)
	if n := len(w.messages); n > maxMessages {
		w.messages = w.messages[n-maxMessages:]
	}
	w.mu.Unlock()

	for _, msg := range msgs {
		w.broker.Publish(resource.CreatedEvent, msg)
	}
	return len(p), nil
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]Message(nil), w.messages...)
}
