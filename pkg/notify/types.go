package notify

import "time"

// Well-known user-info keys recognised by the facade.
const (
	// UserInfoPostNameKey overrides the topic a delivered response is
	// republished under. Applications set it in a notification's UserInfo.
	UserInfoPostNameKey = "postName"

	// UserInfoVibrateKey is reserved for a per-notification vibration
	// override. It is currently inert: the facade neither reads nor
	// writes it at delivery time.
	UserInfoVibrateKey = "vibrate"

	// EventResponseKey is the payload key under which the delegate packages
	// the full Response when republishing it on the event bus.
	EventResponseKey = "notify.response"
)

// Synthetic action identifiers the platform uses for taps and dismissals.
const (
	DefaultActionID = "com.platform.notification.default"
	DismissActionID = "com.platform.notification.dismiss"
)

// AuthorizationOptions is the bit set of permissions requested from the
// platform.
type AuthorizationOptions uint

const (
	AuthorizationAlert AuthorizationOptions = 1 << iota
	AuthorizationSound
	AuthorizationBadge
)

// AuthorizationDefault requests alert, sound and badge permission.
const AuthorizationDefault = AuthorizationAlert | AuthorizationSound | AuthorizationBadge

// PresentationOptions is the bit set a delegate grants for foreground
// delivery.
type PresentationOptions uint

const (
	PresentAlert PresentationOptions = 1 << iota
	PresentSound
	PresentBadge
)

// PresentAll grants alert, sound and badge presentation.
const PresentAll = PresentAlert | PresentSound | PresentBadge

// AuthorizationStatus reports the platform's recorded permission state.
type AuthorizationStatus int

const (
	AuthorizationStatusNotDetermined AuthorizationStatus = iota
	AuthorizationStatusDenied
	AuthorizationStatusAuthorized
	AuthorizationStatusProvisional
)

// Content is the user-visible body of a notification request. The facade
// builds one per Add call and never retains it; the platform owns the
// scheduled copy.
type Content struct {
	Title       string
	Subtitle    string
	Body        string
	Badge       *int
	Sound       string
	UserInfo    map[string]any
	Attachments []Attachment
	CategoryID  string
	ThreadID    string
}

// Attachment references a media resource bundled with a notification.
// The facade passes attachments through to the platform unchanged.
type Attachment struct {
	ID  string
	URL string
}

// Trigger controls when a scheduled notification is delivered.
type Trigger interface {
	// Delay returns how long after scheduling the first delivery occurs.
	Delay() time.Duration
}

// IntervalTrigger delivers after a fixed interval, optionally repeating.
type IntervalTrigger struct {
	Interval time.Duration
	Repeats  bool
}

func (t IntervalTrigger) Delay() time.Duration {
	return t.Interval
}

// CalendarTrigger delivers at a wall-clock time.
type CalendarTrigger struct {
	At time.Time
}

func (t CalendarTrigger) Delay() time.Duration {
	return time.Until(t.At)
}

// Request is a scheduled notification: identifier, content and trigger.
type Request struct {
	ID      string
	Content Content
	Trigger Trigger
}

// Delivered is a notification the platform has presented, with the
// original request and the delivery timestamp.
type Delivered struct {
	Request Request
	Date    time.Time
}

// Response describes the user's interaction with a delivered notification.
type Response struct {
	// ActionID identifies the action taken: a registered category action,
	// or one of DefaultActionID / DismissActionID.
	ActionID string
	// Notification is the delivered notification responded to.
	Notification Delivered
}

// Settings is the platform's current notification configuration.
type Settings struct {
	AuthorizationStatus AuthorizationStatus
	AlertsEnabled       bool
	SoundsEnabled       bool
	BadgesEnabled       bool
}

// ActionOptions is the bit set of behaviors for a category action.
type ActionOptions uint

const (
	ActionAuthenticationRequired ActionOptions = 1 << iota
	ActionDestructive
	ActionForeground
)

// Action is a button attached to a notification category.
type Action struct {
	ID      string
	Title   string
	Options ActionOptions
}

// NewAction builds an Action from TextLike identifier and title.
func NewAction(id, title TextLike, opts ActionOptions) Action {
	return Action{
		ID:      textOf(id),
		Title:   textOf(title),
		Options: opts,
	}
}

// CategoryOptions is the bit set of behaviors for a category.
type CategoryOptions uint

const (
	CategoryCustomDismissAction CategoryOptions = 1 << iota
	CategoryAllowInCarPlay
)

// Category groups actions under an identifier that notification content
// can reference via CategoryID.
type Category struct {
	ID        string
	Actions   []Action
	IntentIDs []string
	Options   CategoryOptions
}

// NewCategory builds a Category from a TextLike identifier.
func NewCategory(id TextLike, actions []Action, intentIDs []string, opts CategoryOptions) Category {
	return Category{
		ID:        textOf(id),
		Actions:   actions,
		IntentIDs: intentIDs,
		Options:   opts,
	}
}
