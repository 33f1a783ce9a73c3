package notify

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// DidReceive handles a user response delivered by the platform. The
// completion callback is invoked synchronously before anything else so the
// platform never sees the application as unresponsive, regardless of what
// happens to the republication.
//
// The event topic is the original request identifier, unless the
// notification's user info carries a non-empty UserInfoPostNameKey string,
// which overrides it. The full Response travels in the payload under
// EventResponseKey. Publication happens on a background goroutine with no
// delivery guarantee: if nobody subscribed to the topic, the event is
// dropped.
func (s *Service) DidReceive(resp Response, completion func()) {
	if completion != nil {
		completion()
	}

	topic := resp.Notification.Request.ID
	if override, ok := resp.Notification.Request.Content.UserInfo[UserInfoPostNameKey].(string); ok && override != "" {
		topic = override
	}

	if s.bus == nil {
		return
	}

	payload := map[string]any{EventResponseKey: resp}

	go func() {
		if err := s.bus.Post(context.Background(), topic, payload); err != nil {
			s.logger.LogAttrs(context.Background(), slog.LevelWarn, "failed to republish notification response",
				logger.Component("notify"),
				logger.Topic(topic),
				logger.NotificationID(resp.Notification.Request.ID),
				logger.ActionID(resp.ActionID),
				logger.Error(err),
			)
		}
	}()
}

// WillPresent authorizes foreground presentation with alert, sound and
// badge. The stored alert style's vibrate flag is deliberately not
// consulted here; per-presentation vibration is reserved behavior behind
// UserInfoVibrateKey and currently inert.
func (s *Service) WillPresent(notif Delivered, completion func(PresentationOptions)) {
	if completion != nil {
		completion(PresentAll)
	}
}
