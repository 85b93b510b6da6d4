package bootstrap

import (
	"context"
	"log/slog"
)

// tokenWatcher reports sign-in changes; *storage.FileStore implements it
type tokenWatcher interface {
	Watch(ctx context.Context, onChange func(token string)) error
}

// SessionHandler reacts to the session token changing under the daemon
type SessionHandler interface {
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context)
}

// SessionFuncs adapts a pair of functions to SessionHandler. Nil funcs are skipped.
type SessionFuncs struct {
	OnSignIn  func(ctx context.Context) error
	OnSignOut func(ctx context.Context)
}

func (f SessionFuncs) SignIn(ctx context.Context) error {
	if f.OnSignIn == nil {
		return nil
	}
	return f.OnSignIn(ctx)
}

func (f SessionFuncs) SignOut(ctx context.Context) {
	if f.OnSignOut != nil {
		f.OnSignOut(ctx)
	}
}

// WatchSession reloads the garden whenever a new token is written, so signing
// in from the login command takes effect without a restart, and clears it when
// the token is removed. It blocks until ctx is done. current is the token
// already loaded at startup.
func WatchSession(ctx context.Context, w tokenWatcher, current string, session SessionHandler) {
	slog.Info(LogMsgWatchingSession)

	last := current
	err := w.Watch(ctx, func(token string) {
		if token == last {
			return
		}
		last = token

		if token == "" {
			slog.Info(LogMsgSignedOut)
			session.SignOut(ctx)
			return
		}
		slog.Info(LogMsgSignedIn)
		if err := session.SignIn(ctx); err != nil {
			slog.Warn(LogMsgReloadFailed, "error", err)
		}
	})
	if err != nil {
		slog.Error(LogMsgWatchFailed, "error", err)
	}
}
