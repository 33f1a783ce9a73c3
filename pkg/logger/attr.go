package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Topic records an event-bus topic under the key "topic".
func Topic(topic string) slog.Attr {
	return slog.String("topic", topic)
}

// NotificationID records a notification request identifier under the key
// "notification_id".
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// ActionID records a notification action identifier under the key
// "action_id".
func ActionID(id string) slog.Attr {
	return slog.String("action_id", id)
}

// Component records the originating component name under the key
// "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
