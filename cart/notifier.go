package cart

import "log"

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notice is the transient, user-facing notification emitted after cart
// operations. Handlers forward it to the client; the default notifier
// also writes it to the server log.
type Notice struct {
	Level       string `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Notifier interface {
	Notify(Notice)
}

// LogNotifier writes notices to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notice) {
	if n.Level == LevelError {
		log.Printf("⚠️ %s: %s", n.Title, n.Description)
		return
	}
	log.Printf("✅ %s: %s", n.Title, n.Description)
}
