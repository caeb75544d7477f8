package domain

// Notification is a synthetic push event. Ephemeral: streamed, never stored.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Content   string
	Timestamp string
	Priority  Priority
}

type NotificationType string

const (
	NotifMessage NotificationType = "message"
	NotifSystem  NotificationType = "system"
	NotifAlert   NotificationType = "alert"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)
