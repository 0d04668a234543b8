package notify

import "sync"

// Recorder is a Notifier for tests that keeps every notification.
type Recorder struct {
	mu     sync.Mutex
	sent   []Notification
	closed []uint32
	nextID uint32
	// Err, when set, is returned by Notify.
	Err error
}

var _ Notifier = (*Recorder)(nil)

// Notify records n and returns an increasing ID, or n.ReplacesID when set.
func (r *Recorder) Notify(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	r.sent = append(r.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	r.nextID++
	return r.nextID, nil
}

// Close records id.
func (r *Recorder) Close(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = append(r.closed, id)
	return nil
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

// Closed returns the IDs passed to Close.
func (r *Recorder) Closed() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint32(nil), r.closed...)
}
