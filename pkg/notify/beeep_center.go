package notify

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// BeeepCenter is a desktop implementation of Center on top of the
// cross-platform beeep library. It is a best-effort stand-in for a real
// mobile notification center: authorization is always granted, scheduled
// requests are tracked in memory, and delivery shows an OS notification
// after the trigger delay elapses.
//
// Desktop delivery is always "foreground", so the delegate's WillPresent
// decides what each delivery shows. Delivered notifications accumulate
// until removed; desktop notification daemons expose no feedback channel,
// so user responses never reach DidReceive through this center.
type BeeepCenter struct {
	appIcon    string
	pending    map[string]*scheduledRequest
	delivered  []Delivered
	categories []Category
	delegate   Delegate
	mu         sync.Mutex
}

type scheduledRequest struct {
	req   Request
	timer *time.Timer
}

// BeeepOption configures a BeeepCenter.
type BeeepOption func(*BeeepCenter)

// WithAppIcon sets the icon path passed to the OS notification daemon.
func WithAppIcon(path string) BeeepOption {
	return func(c *BeeepCenter) { c.appIcon = path }
}

// NewBeeepCenter creates a desktop notification center.
func NewBeeepCenter(opts ...BeeepOption) *BeeepCenter {
	c := &BeeepCenter{
		pending: make(map[string]*scheduledRequest),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestAuthorization always grants: desktop daemons have no runtime
// permission prompt the library could surface.
func (c *BeeepCenter) RequestAuthorization(opts AuthorizationOptions, fn func(granted bool, err error)) {
	fn(true, nil)
}

func (c *BeeepCenter) Add(req Request, fn func(err error)) {
	var delay time.Duration
	if req.Trigger != nil {
		delay = max(req.Trigger.Delay(), 0)
	}

	c.mu.Lock()
	if existing, ok := c.pending[req.ID]; ok {
		existing.timer.Stop()
	}

	sched := &scheduledRequest{req: req}
	sched.timer = time.AfterFunc(delay, func() {
		c.deliver(req.ID)
	})
	c.pending[req.ID] = sched
	c.mu.Unlock()

	fn(nil)
}

func (c *BeeepCenter) deliver(id string) {
	c.mu.Lock()
	sched, ok := c.pending[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	delete(c.pending, id)

	notif := Delivered{Request: sched.req, Date: time.Now()}
	c.delivered = append(c.delivered, notif)
	d := c.delegate
	c.mu.Unlock()

	// Every desktop delivery is a foreground delivery, so the delegate
	// gets to narrow what is shown. No delegate means show everything.
	present := PresentAll
	if d != nil {
		present = 0
		d.WillPresent(notif, func(opts PresentationOptions) { present = opts })
	}
	if present&PresentAlert == 0 {
		return
	}

	title := sched.req.Content.Title
	if sched.req.Content.Subtitle != "" {
		title += " - " + sched.req.Content.Subtitle
	}

	// Delivery failures are swallowed: the platform contract reports
	// errors only at submission time.
	if present&PresentSound != 0 && sched.req.Content.Sound != "" {
		_ = beeep.Alert(title, sched.req.Content.Body, c.appIcon)
	} else {
		_ = beeep.Notify(title, sched.req.Content.Body, c.appIcon)
	}
}

func (c *BeeepCenter) PendingRequests(fn func(reqs []Request)) {
	c.mu.Lock()
	reqs := make([]Request, 0, len(c.pending))
	for _, sched := range c.pending {
		reqs = append(reqs, sched.req)
	}
	c.mu.Unlock()
	fn(reqs)
}

func (c *BeeepCenter) DeliveredNotifications(fn func(notifs []Delivered)) {
	c.mu.Lock()
	notifs := make([]Delivered, len(c.delivered))
	copy(notifs, c.delivered)
	c.mu.Unlock()
	fn(notifs)
}

func (c *BeeepCenter) RemovePendingRequests(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		if sched, ok := c.pending[id]; ok {
			sched.timer.Stop()
			delete(c.pending, id)
		}
	}
}

func (c *BeeepCenter) RemoveDeliveredNotifications(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delivered = removeByID(c.delivered, ids, func(d Delivered) string { return d.Request.ID })
}

func (c *BeeepCenter) SetNotificationCategories(cats []Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = make([]Category, len(cats))
	copy(c.categories, cats)
}

func (c *BeeepCenter) NotificationCategories(fn func(cats []Category)) {
	c.mu.Lock()
	cats := make([]Category, len(c.categories))
	copy(cats, c.categories)
	c.mu.Unlock()
	fn(cats)
}

// NotificationSettings reports a fully-enabled configuration; desktop
// daemons expose no per-capability toggles to query.
func (c *BeeepCenter) NotificationSettings(fn func(s Settings)) {
	fn(Settings{
		AuthorizationStatus: AuthorizationStatusAuthorized,
		AlertsEnabled:       true,
		SoundsEnabled:       true,
		BadgesEnabled:       true,
	})
}

func (c *BeeepCenter) SetDelegate(d Delegate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delegate = d
}

// BeeepVibrator approximates the system vibration alert with an audible
// beep, the closest cross-platform equivalent the desktop offers.
type BeeepVibrator struct{}

func (BeeepVibrator) Vibrate() {
	_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}
