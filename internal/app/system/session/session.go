// Package session keeps per-visitor state in a signed cookie: the applicant
// id that selects the visitor's application store, and one-shot flash
// messages shown on the next page render.
package session

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const applicantKey = "applicant_id"

type ctxKey struct{}

func init() {
	// flash messages are stored as []interface{} inside the session values
	gob.Register([]interface{}{})
}

// Manager wraps a gorilla cookie store.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager that signs cookies with key. An empty key
// gets a random one, which means sessions do not survive a restart.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if name == "" {
		return nil, errors.New("session: cookie name is required")
	}

	hashKey := []byte(key)
	if key == "" {
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, errors.New("session: could not generate a signing key")
		}
		logger.Warn("session_key is empty; using a random signing key")
	}

	store := sessions.NewCookieStore(hashKey)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   86400 * 30,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// getSession returns the request's session. When the cookie cannot be
// decoded a fresh session is returned together with the error.
func (m *Manager) getSession(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, m.name)
}

func (m *Manager) session(r *http.Request) *sessions.Session {
	sess, err := m.getSession(r)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			m.log.Warn("session cookie invalid, using fresh session", zap.Error(err))
		} else {
			m.log.Error("session store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}

// LoadApplicant makes sure every visitor has an applicant id and stores it
// in the request context (see ApplicantID).
func (m *Manager) LoadApplicant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.session(r)

		id, _ := sess.Values[applicantKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[applicantKey] = id
			if err := sess.Save(r, w); err != nil {
				m.log.Error("save session failed", zap.Error(err))
				http.Error(w, "session error", http.StatusInternalServerError)
				return
			}
			m.log.Debug("new applicant", zap.String("applicant_id", id))
		}

		next.ServeHTTP(w, r.WithContext(WithApplicant(r.Context(), id)))
	})
}

// WithApplicant returns a copy of ctx carrying applicantID.
func WithApplicant(ctx context.Context, applicantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, applicantID)
}

// ApplicantID returns the applicant id placed in the context by LoadApplicant.
func ApplicantID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// AddFlash queues msg for the next page render.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	sess := m.session(r)
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// Flashes returns and clears the queued flash messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) ([]string, error) {
	sess := m.session(r)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs, sess.Save(r, w)
}
