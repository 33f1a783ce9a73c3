package notify

// Center is the platform notification center as the facade sees it: a
// callback-based, opaque collaborator. The operating system's permission
// model, delivery pipeline and persistence all live behind this interface.
//
// Every completion callback is invoked exactly once per call. Callbacks
// may fire on arbitrary goroutines.
type Center interface {
	// RequestAuthorization asks the user for permission. The callback
	// receives the grant decision and an optional platform error.
	RequestAuthorization(opts AuthorizationOptions, fn func(granted bool, err error))

	// Add schedules a notification request. The callback receives nil on
	// acceptance or the platform's error.
	Add(req Request, fn func(err error))

	// PendingRequests reports all requests scheduled but not yet delivered.
	PendingRequests(fn func(reqs []Request))

	// DeliveredNotifications reports notifications still present in the
	// platform's notification list.
	DeliveredNotifications(fn func(notifs []Delivered))

	// RemovePendingRequests unschedules the requests with the given
	// identifiers. Fire-and-forget; unknown identifiers are ignored.
	RemovePendingRequests(ids []string)

	// RemoveDeliveredNotifications removes delivered notifications with
	// the given identifiers. Fire-and-forget.
	RemoveDeliveredNotifications(ids []string)

	// SetNotificationCategories replaces the registered category set.
	SetNotificationCategories(cats []Category)

	// NotificationCategories reports the currently registered categories.
	NotificationCategories(fn func(cats []Category))

	// NotificationSettings reports the platform's current settings.
	NotificationSettings(fn func(s Settings))

	// SetDelegate registers the receiver for response and presentation
	// callbacks. The delegate is never unregistered.
	SetDelegate(d Delegate)
}

// Delegate receives platform callbacks for user responses and foreground
// deliveries. The completion function of each callback MUST be invoked
// exactly once, or the platform treats the application as unresponsive.
type Delegate interface {
	// DidReceive is called when the user interacts with a delivered
	// notification.
	DidReceive(resp Response, completion func())

	// WillPresent is called before a notification is presented while the
	// application is in the foreground; the completion selects which
	// presentation options to allow.
	WillPresent(notif Delivered, completion func(PresentationOptions))
}

// Vibrator abstracts the platform's system-sound service used for the
// one-shot vibration alert.
type Vibrator interface {
	Vibrate()
}

// NoopVibrator ignores vibration requests. It is the default when no
// vibrator is configured.
type NoopVibrator struct{}

func (NoopVibrator) Vibrate() {}
