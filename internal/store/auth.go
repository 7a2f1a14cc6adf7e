package store

import (
	"context"

	sonic "github.com/bytedance/sonic"

	"github.com/fanconnect/portal/internal/domain/user"
	"github.com/fanconnect/portal/internal/platform/events"
)

// Authenticate scans users for an exact username/password match. Passwords
// are compared in clear text by design of the original system. On success
// the record's lastLogin is stamped and persisted, and the user becomes the
// current session. A miss returns (zero, false, nil).
func (s *Store) Authenticate(ctx context.Context, username, password string) (user.User, bool, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return user.User{}, false, err
	}

	for i := range users {
		if users[i].Username != username || users[i].Password != password {
			continue
		}

		now := s.now()
		users[i].LastLogin = &now
		if err := s.SetUsers(ctx, users); err != nil {
			return user.User{}, false, err
		}
		if err := s.setSession(&users[i]); err != nil {
			return user.User{}, false, err
		}

		s.publish(ctx, events.UserLoggedIn, users[i])
		return users[i], true, nil
	}

	return user.User{}, false, nil
}

// Logout clears the current-session slot.
func (s *Store) Logout(ctx context.Context) error {
	return s.setSession(nil)
}

// CurrentSession reads the session slot back; this is how a caller resumes
// a session across restarts.
func (s *Store) CurrentSession(ctx context.Context) (user.User, bool, error) {
	raw, ok, err := s.ns.Get(keyCurrentUser)
	if err != nil {
		return user.User{}, false, err
	}
	if !ok || len(raw) == 0 {
		return user.User{}, false, nil
	}

	var out user.User
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return user.User{}, false, err
	}
	return out, true, nil
}

func (s *Store) setSession(u *user.User) error {
	if u == nil {
		return s.ns.Delete(keyCurrentUser)
	}

	raw, err := sonic.Marshal(u)
	if err != nil {
		return err
	}
	return s.ns.Set(keyCurrentUser, raw)
}
