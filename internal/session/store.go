package session

import (
	"context"
	"database/sql"
	"encoding/base32"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Ashupap/ShorelineVision-sub000/config"
	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const userIDKey = "userId"

// ErrNoSession is returned when the request carries no authenticated session.
var ErrNoSession = errors.New("no authenticated session")

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS sessions (
		sid TEXT PRIMARY KEY,
		sess TEXT NOT NULL,
		expire TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_expire ON sessions (expire)`

// PGStore is a sessions.Store that keeps session data in Postgres. The
// cookie only carries the signed session id.
type PGStore struct {
	db          *sql.DB
	name        string
	Codecs      []securecookie.Codec
	Options     *sessions.Options
	ttl         time.Duration
	forceSecure bool
}

var _ sessions.Store = (*PGStore)(nil)

// New builds the store and makes sure the sessions table exists.
func New(ctx context.Context, db *sql.DB, cfg config.SessionConfig) (*PGStore, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	name := cfg.CookieName
	if name == "" {
		name = "connect.sid"
	}

	codecs := securecookie.CodecsFromPairs([]byte(cfg.Secret))
	for _, codec := range codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(ttl.Seconds()))
			sc.MaxLength(0)
		}
	}

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("create sessions table: %w", err)
	}

	return &PGStore{
		db:     db,
		name:   name,
		Codecs: codecs,
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		ttl:         ttl,
		forceSecure: cfg.CookieSecure,
	}, nil
}

// Name is the cookie name the store's sessions are registered under.
func (s *PGStore) Name() string {
	return s.name
}

func (s *PGStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns the session referenced by the request cookie or a fresh one.
// A missing, tampered or expired session yields an empty new session.
func (s *PGStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	opts.Secure = s.secure(r)
	session.Options = &opts
	session.IsNew = true

	cookie, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	if err := securecookie.DecodeMulti(name, cookie.Value, &session.ID, s.Codecs...); err != nil {
		session.ID = ""
		return session, nil
	}

	found, err := s.load(r.Context(), session)
	if err != nil {
		return session, err
	}
	if !found {
		session.ID = ""
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes its cookie. A negative MaxAge
// removes the row and expires the cookie.
func (s *PGStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options == nil {
		opts := *s.Options
		opts.Secure = s.secure(r)
		session.Options = &opts
	}

	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.delete(r.Context(), session.ID); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}
	if err := s.save(r.Context(), session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// Establish binds userID to a freshly issued session id, discarding any
// session the request arrived with.
func (s *PGStore) Establish(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := s.Get(r, s.name)
	if err != nil {
		return err
	}
	if session.ID != "" {
		if err := s.delete(r.Context(), session.ID); err != nil {
			return err
		}
	}
	session.ID = ""
	session.Values = map[interface{}]interface{}{userIDKey: userID}
	return session.Save(r, w)
}

// Destroy removes the current session. Destroying an absent session is not
// an error.
func (s *PGStore) Destroy(w http.ResponseWriter, r *http.Request) error {
	session, err := s.Get(r, s.name)
	if err != nil {
		return err
	}
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// UserID returns the user bound to the request's session.
func (s *PGStore) UserID(r *http.Request) (string, error) {
	session, err := s.Get(r, s.name)
	if err != nil {
		return "", err
	}
	userID, ok := session.Values[userIDKey].(string)
	if !ok || userID == "" {
		return "", ErrNoSession
	}
	return userID, nil
}

// DeleteExpired removes every session whose expiry has passed.
func (s *PGStore) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expire <= $1`, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// StartCleanup sweeps expired sessions every interval until ctx is done.
func (s *PGStore) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := s.DeleteExpired(ctx)
				if err != nil {
					logger.Log.Warnw("session cleanup failed", "error", err)
					continue
				}
				if removed > 0 {
					logger.Log.Debugw("expired sessions removed", "count", removed)
				}
			}
		}
	}()
}

func (s *PGStore) load(ctx context.Context, session *sessions.Session) (bool, error) {
	var data string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT sess FROM sessions WHERE sid = $1 AND expire > $2`,
		session.ID,
		time.Now().UTC(),
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load session: %w", err)
	}
	if err := securecookie.DecodeMulti(session.Name(), data, &session.Values, s.Codecs...); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *PGStore) save(ctx context.Context, session *sessions.Session) error {
	data, err := securecookie.EncodeMulti(session.Name(), session.Values, s.Codecs...)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	const query = `
		INSERT INTO sessions (sid, sess, expire)
		VALUES ($1, $2, $3)
		ON CONFLICT (sid) DO UPDATE
		SET sess = EXCLUDED.sess,
			expire = EXCLUDED.expire`
	if _, err := s.db.ExecContext(ctx, query, session.ID, data, time.Now().UTC().Add(s.ttl)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *PGStore) delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE sid = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *PGStore) secure(r *http.Request) bool {
	if s.forceSecure || r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}
