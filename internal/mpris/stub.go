//go:build !linux

package mpris

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ *Bridge) *Adapter {
	return &Adapter{}
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
