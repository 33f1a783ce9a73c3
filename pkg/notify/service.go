package notify

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/async"
	"github.com/dmitrymomot/notifykit/pkg/bus"
)

const (
	defaultDelay         = 100 * time.Millisecond
	defaultVibrateOffset = time.Second
)

// Service is the single entry point to the platform's local-notification
// subsystem. It registers itself as the platform delegate on construction
// and is intended to live for the whole process; there is no teardown.
//
// Dependencies are injected explicitly. For tests, substitute the Center
// with a MemoryCenter and the bus with any Publisher implementation.
type Service struct {
	center        Center
	bus           bus.Publisher
	vibrator      Vibrator
	logger        *slog.Logger
	delay         time.Duration
	vibrateOffset time.Duration
	busBufferSize int
}

// Option configures a Service.
type Option func(*Service)

// WithBus sets the event bus responses are republished on. Without a bus,
// responses are acknowledged but not republished.
func WithBus(p bus.Publisher) Option {
	return func(s *Service) { s.bus = p }
}

// WithVibrator sets the system service used for the vibration side effect.
func WithVibrator(v Vibrator) Option {
	return func(s *Service) {
		if v != nil {
			s.vibrator = v
		}
	}
}

// WithLogger sets the logger used for delegate and publication diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultDelay overrides the trigger interval used when Add is called
// without a trigger. Non-positive values are ignored.
func WithDefaultDelay(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithVibrateOffset overrides the extra delay before the vibration side
// effect fires. Negative values are ignored.
func WithVibrateOffset(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.vibrateOffset = d
		}
	}
}

// WithConfig applies the settings from an environment-loaded Config. The
// BusBufferSize takes effect only when the service builds its own hub
// through NewWithHub.
func WithConfig(cfg Config) Option {
	return func(s *Service) {
		if cfg.DefaultDelay > 0 {
			s.delay = cfg.DefaultDelay
		}
		if cfg.VibrateOffset >= 0 {
			s.vibrateOffset = cfg.VibrateOffset
		}
		if cfg.BusBufferSize > 0 {
			s.busBufferSize = cfg.BusBufferSize
		}
	}
}

// New creates the facade around the given platform center and registers it
// as the center's delegate.
func New(center Center, opts ...Option) (*Service, error) {
	if center == nil {
		return nil, ErrNilCenter
	}

	s := &Service{
		center:        center,
		vibrator:      NoopVibrator{},
		logger:        slog.Default(),
		delay:         defaultDelay,
		vibrateOffset: defaultVibrateOffset,
	}

	for _, opt := range opts {
		opt(s)
	}

	center.SetDelegate(s)

	return s, nil
}

// NewWithHub creates the facade together with an in-process event bus the
// service republishes responses on. The hub's subscription buffer comes
// from WithConfig's BusBufferSize when one is set; the hub supersedes any
// bus passed through WithBus. The caller owns the hub and should Close it
// when the service is no longer needed.
func NewWithHub(center Center, opts ...Option) (*Service, *bus.Hub, error) {
	s, err := New(center, opts...)
	if err != nil {
		return nil, nil, err
	}

	var hubOpts []bus.HubOption
	if s.busBufferSize > 0 {
		hubOpts = append(hubOpts, bus.WithDefaultBufferSize(s.busBufferSize))
	}
	hub := bus.NewHub(hubOpts...)
	s.bus = hub

	return s, hub, nil
}

// SetCategories replaces the platform's registered action-category set.
// Fire-and-forget; the platform reports no result.
func (s *Service) SetCategories(cats ...Category) {
	s.center.SetNotificationCategories(cats)
}

// ResponseFromEvent extracts the Response a delegate callback attached to
// an event payload, or reports false if the payload carries none.
func (s *Service) ResponseFromEvent(payload map[string]any) (Response, bool) {
	if payload == nil {
		return Response{}, false
	}
	resp, ok := payload[EventResponseKey].(Response)
	return resp, ok
}

// AddRequest is the canonical description of a notification to schedule.
// Identifier, Title and Body are required; everything else is optional and
// absent by default.
type AddRequest struct {
	Identifier  TextLike
	Title       TextLike
	Subtitle    TextLike
	Body        TextLike
	Badge       *int
	Style       *AlertStyle
	UserInfo    map[string]any
	Attachments []Attachment
	Category    TextLike
	Thread      TextLike

	// Trigger controls delivery timing. Nil means "deliver almost
	// immediately": an interval trigger using the service's default delay.
	Trigger Trigger
}

// Add builds notification content from the given fields and schedules it
// with the platform. The returned future resolves empty on successful
// submission or rejects with the platform's error.
//
// If Style.Vibrate is set, a one-shot vibration is scheduled for
// defaultDelay+vibrateOffset from now, before submission is even attempted.
// It fires regardless of whether the platform later accepts the request,
// and cannot be retracted.
func (s *Service) Add(req AddRequest) *async.Future[struct{}] {
	if req.Style != nil && req.Style.Vibrate {
		s.scheduleVibration()
	}

	switch {
	case textOf(req.Identifier) == "":
		return async.Rejected[struct{}](ErrMissingIdentifier)
	case textOf(req.Title) == "":
		return async.Rejected[struct{}](ErrMissingTitle)
	case textOf(req.Body) == "":
		return async.Rejected[struct{}](ErrMissingBody)
	}

	content := Content{
		Title:       textOf(req.Title),
		Subtitle:    textOf(req.Subtitle),
		Body:        textOf(req.Body),
		Badge:       req.Badge,
		UserInfo:    req.UserInfo,
		Attachments: req.Attachments,
		CategoryID:  textOf(req.Category),
		ThreadID:    textOf(req.Thread),
	}
	if req.Style != nil {
		content.Sound = req.Style.Sound
	}

	return s.add(Request{
		ID:      textOf(req.Identifier),
		Content: content,
		Trigger: s.triggerOrDefault(req.Trigger),
	})
}

// AddContent schedules pre-built content under the given identifier. A nil
// trigger falls back to the default short delay. Unlike Add, no vibration
// side effect is scheduled: the caller owns the content entirely.
func (s *Service) AddContent(id TextLike, content Content, trigger Trigger) *async.Future[struct{}] {
	if textOf(id) == "" {
		return async.Rejected[struct{}](ErrMissingIdentifier)
	}

	return s.add(Request{
		ID:      textOf(id),
		Content: content,
		Trigger: s.triggerOrDefault(trigger),
	})
}

func (s *Service) triggerOrDefault(t Trigger) Trigger {
	if t == nil {
		return IntervalTrigger{Interval: s.delay}
	}
	return t
}

// scheduleVibration arms the one-shot vibration. Fire-and-forget: it is
// not synchronized with notification delivery and cannot be cancelled.
func (s *Service) scheduleVibration() {
	v := s.vibrator
	time.AfterFunc(s.delay+s.vibrateOffset, v.Vibrate)
}

// add wraps the platform's callback-based add operation into a future.
func (s *Service) add(req Request) *async.Future[struct{}] {
	p, f := async.New[struct{}]()
	s.center.Add(req, func(err error) {
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(struct{}{})
	})
	return f
}
