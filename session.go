package foodhabits

import "context"

// SignUp creates an account and activates the resulting session with a
// fresh default snapshot. Returns ErrSignInBusy if another credential
// exchange is already in flight.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (Session, error) {
	return c.sessions.SignUp(ctx, name, email, password)
}

// SignIn exchanges credentials for a session and swaps the local state to
// that user's persisted snapshot, seeding defaults on first sign-in.
// Returns ErrSignInBusy if another credential exchange is already in
// flight.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	return c.sessions.SignIn(ctx, email, password)
}

// SignOut persists the active user's snapshot, clears the stored session
// and resets local state to the default seed. Queued sync jobs for the
// outgoing user keep draining in the background.
func (c *Client) SignOut() error {
	return c.sessions.SignOut()
}

// CurrentSession returns the active session, or ErrNoSession.
func (c *Client) CurrentSession() (Session, error) {
	return c.sessions.Current()
}

// RestoreSession rehydrates the last persisted session and its snapshot,
// reporting whether one was found.
func (c *Client) RestoreSession() (bool, error) {
	return c.sessions.Restore()
}
