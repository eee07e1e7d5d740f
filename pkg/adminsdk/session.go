package adminsdk

import (
	"context"
	"fmt"
	"sync"
)

// Session holds the authenticated actor's profile and role as process-wide
// reactive state. All mutation is synchronous: there is never a window
// where the session is half-updated, even though population is triggered
// by asynchronous calls. Observers are notified synchronously after every
// mutation.
type Session struct {
	client *Client

	mu        sync.Mutex
	info      UserInfo
	observers []sessionObserver
	teardowns []func()
	nextObs   int
}

type sessionObserver struct {
	id int
	fn func(UserInfo)
}

// NewSession creates an empty session bound to the gateway client and
// registers its teardown as the client's forced-logout handler.
func NewSession(client *Client) *Session {
	s := &Session{client: client}
	client.SetForcedLogoutHandler(s.Teardown)
	return s
}

// Role returns the current role; RoleAnonymous until a login or fetch
// populates the session.
func (s *Session) Role() Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info.Role
}

// Info returns a snapshot of the session. The linked CompanyState pointer
// is shared; treat it as read-only.
func (s *Session) Info() UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Subscribe registers an observer called synchronously after every session
// mutation with the post-mutation snapshot. The returned cancel removes it.
func (s *Session) Subscribe(fn func(UserInfo)) (cancel func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, sessionObserver{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, obs := range s.observers {
			if obs.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// OnTeardown registers a hook run during Teardown, after the session and
// credential are cleared. The navigation layer registers its route-change
// listener removal and server-menu cache clear here.
func (s *Session) OnTeardown(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardowns = append(s.teardowns, fn)
}

// SetInfo merges the provided fields into the current session. Role is
// applied first and explicitly: it is the single source of truth for
// authorization and must never be dropped by the generic field merge.
func (s *Session) SetInfo(info UserInfo) {
	s.mu.Lock()
	if info.Role != RoleAnonymous {
		s.info.Role = info.Role
	}
	mergeProfile(&s.info, info)
	snapshot := s.info
	observers := append([]sessionObserver(nil), s.observers...)
	s.mu.Unlock()

	for _, obs := range observers {
		obs.fn(snapshot)
	}
}

// ResetInfo restores the session to its initial empty defaults.
func (s *Session) ResetInfo() {
	s.mu.Lock()
	s.info = UserInfo{}
	snapshot := s.info
	observers := append([]sessionObserver(nil), s.observers...)
	s.mu.Unlock()

	for _, obs := range observers {
		obs.fn(snapshot)
	}
}

// FetchInfo hydrates the session from the who-am-I endpoint. Used after a
// reload when only the stored credential survived.
func (s *Session) FetchInfo(ctx context.Context) error {
	info, err := s.client.UserInfo(ctx)
	if err != nil {
		return err
	}
	s.SetInfo(*info)
	return nil
}

// Login authenticates and populates the session. On success the credential
// is stored and the login response's profile is applied as authoritative.
// On failure any partial credential is cleared, the session stays
// unchanged, and the original error is returned unmodified so the login
// form can display it.
func (s *Session) Login(ctx context.Context, username, password string) error {
	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		if cerr := s.client.creds.Clear(ctx); cerr != nil {
			s.client.log.WarnContext(ctx, "credential clear failed", "error", cerr)
		}
		return err
	}

	if err := s.client.creds.Set(ctx, resp.Token); err != nil {
		return fmt.Errorf("adminsdk: store credential: %w", err)
	}
	s.SetInfo(resp.UserInfo)

	if s.client.refetchAfterLogin {
		return s.FetchInfo(ctx)
	}
	return nil
}

// Logout invalidates the server-side session and then tears down local
// state. Teardown is unconditional: it runs even when the remote call
// fails, and the remote error is still returned.
func (s *Session) Logout(ctx context.Context) error {
	err := s.client.Logout(ctx)
	s.Teardown()
	return err
}

// Teardown clears the session, the stored credential, and runs the
// registered teardown hooks. Safe to call more than once.
func (s *Session) Teardown() {
	s.ResetInfo()
	if err := s.client.creds.Clear(context.Background()); err != nil {
		s.client.log.Warn("credential clear failed", "error", err)
	}

	s.mu.Lock()
	hooks := append([]func(){}, s.teardowns...)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// SwitchRole toggles between the user and admin roles and returns the new
// role. Demo helper for exercising permission-gated views.
func (s *Session) SwitchRole() Role {
	s.mu.Lock()
	if s.info.Role == RoleUser {
		s.info.Role = RoleAdmin
	} else {
		s.info.Role = RoleUser
	}
	snapshot := s.info
	observers := append([]sessionObserver(nil), s.observers...)
	s.mu.Unlock()

	for _, obs := range observers {
		obs.fn(snapshot)
	}
	return snapshot.Role
}

// mergeProfile copies every populated profile field of src into dst.
// Role is handled by the caller before this runs.
func mergeProfile(dst *UserInfo, src UserInfo) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Avatar != "" {
		dst.Avatar = src.Avatar
	}
	if src.Job != "" {
		dst.Job = src.Job
	}
	if src.Organization != "" {
		dst.Organization = src.Organization
	}
	if src.Location != "" {
		dst.Location = src.Location
	}
	if src.Email != "" {
		dst.Email = src.Email
	}
	if src.Introduction != "" {
		dst.Introduction = src.Introduction
	}
	if src.PersonalWebsite != "" {
		dst.PersonalWebsite = src.PersonalWebsite
	}
	if src.JobName != "" {
		dst.JobName = src.JobName
	}
	if src.OrganizationName != "" {
		dst.OrganizationName = src.OrganizationName
	}
	if src.LocationName != "" {
		dst.LocationName = src.LocationName
	}
	if src.Phone != "" {
		dst.Phone = src.Phone
	}
	if src.RegistrationDate != "" {
		dst.RegistrationDate = src.RegistrationDate
	}
	if src.AccountID != 0 {
		dst.AccountID = src.AccountID
	}
	if src.Certification != nil {
		dst.Certification = src.Certification
	}
	if src.CompanyState != nil {
		dst.CompanyState = src.CompanyState
	}
}
