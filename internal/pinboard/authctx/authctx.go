// Package authctx derives the acting identity of a request from its
// authenticated session.
package authctx

import (
	"context"

	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
)

// Session is anything that can name the subject it was authenticated for.
type Session interface {
	CurrentSubjectID() (idx.ID, bool)
}

// Actor is the identity on whose behalf an operation runs.
type Actor struct {
	id idx.ID
}

// Anonymous is the actor of unauthenticated requests.
var Anonymous = Actor{}

// ID returns the acting identity, or idx.Zero when anonymous.
func (a Actor) ID() idx.ID { return a.id }

func (a Actor) IsAuthenticated() bool { return !a.id.IsZero() }

// Resolve turns a session into an actor. A nil session, a session without
// a subject, or a malformed subject all resolve to Anonymous.
func Resolve(s Session) Actor {
	if s == nil {
		return Anonymous
	}
	id, ok := s.CurrentSubjectID()
	if !ok || id.IsZero() {
		return Anonymous
	}
	if _, err := idx.Parse(id.String()); err != nil {
		return Anonymous
	}
	return Actor{id: id}
}

// TokenSession is a Session backed by the verified bearer token that the
// httpx authentication middleware stored in a request context.
type TokenSession struct {
	ctx context.Context
}

// SessionFromContext wraps ctx as a Session.
func SessionFromContext(ctx context.Context) TokenSession {
	return TokenSession{ctx: ctx}
}

func (s TokenSession) CurrentSubjectID() (idx.ID, bool) {
	sub, ok := httpx.SubjectFromContext(s.ctx)
	if !ok {
		return idx.Zero, false
	}
	return idx.ID(sub), true
}

// FromContext resolves the actor of the request carried by ctx.
func FromContext(ctx context.Context) Actor {
	return Resolve(SessionFromContext(ctx))
}
