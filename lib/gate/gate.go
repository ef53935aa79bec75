package gate

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrAccessDenied is the only answer to a failed unlock, whatever the reason.
	ErrAccessDenied = errors.New("access denied")
	// ErrLocked is returned by gated actions called from a locked session.
	ErrLocked         = errors.New("admin unlock required")
	ErrInvalidSession = errors.New("invalid session")
)

// Session is the per-client state of the access gate.
type Session struct {
	ID       string
	Unlocked bool
}

type Provider interface {
	NewSession() (sess Session, token string, err error)
	Unlock(sess Session, password string) (unlocked Session, token string, err error)
	Token(sess Session) (string, error)
	Parse(token string) (Session, error)
	SigningKey() []byte
}

var Instance Provider

func NewHandler(adminPassword, jwtSecret string, expire time.Duration) {
	Instance = New(adminPassword, jwtSecret, expire)
}

func New(adminPassword, jwtSecret string, expire time.Duration) Provider {
	if jwtSecret == "" {
		log.Warn("session secret is not configured, sessions will not survive a restart")
		jwtSecret = uuid.NewString()
	}
	if adminPassword == "" {
		log.Warn("admin password is not configured, compile is unavailable")
	}
	return impl{
		adminPassword: adminPassword,
		jwtSecret:     []byte(jwtSecret),
		expire:        expire,
	}
}

type impl struct {
	adminPassword string
	jwtSecret     []byte
	expire        time.Duration
}

func (i impl) NewSession() (Session, string, error) {
	sess := Session{ID: uuid.NewString()}
	token, err := i.Token(sess)
	if err != nil {
		return Session{}, "", err
	}
	return sess, token, nil
}

func (i impl) Unlock(sess Session, password string) (Session, string, error) {
	if !i.checkPassword(password) {
		log.WithField("session", sess.ID).Info("admin unlock rejected")
		return sess, "", ErrAccessDenied
	}
	sess.Unlocked = true
	token, err := i.Token(sess)
	if err != nil {
		return Session{}, "", err
	}
	log.WithField("session", sess.ID).Info("session unlocked")
	return sess, token, nil
}

func (i impl) checkPassword(password string) bool {
	if i.adminPassword == "" || password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(i.adminPassword)) == 1
}

func (i impl) Token(sess Session) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid":      sess.ID,
		"unlocked": sess.Unlocked,
		"iat":      now.Unix(),
		"exp":      now.Add(i.expire).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.jwtSecret)
	if err != nil {
		return "", errors.Wrap(err, "unable to sign session token")
	}
	return tokenString, nil
}

func (i impl) Parse(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return i.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidSession
	}
	return FromClaims(claims)
}

func (i impl) SigningKey() []byte {
	return i.jwtSecret
}

// FromClaims rebuilds a session from verified token claims.
func FromClaims(claims jwt.MapClaims) (Session, error) {
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return Session{}, ErrInvalidSession
	}
	unlocked, _ := claims["unlocked"].(bool)
	return Session{ID: sid, Unlocked: unlocked}, nil
}

// Require fails with ErrLocked unless the session passed the gate.
func Require(sess Session) error {
	if !sess.Unlocked {
		return ErrLocked
	}
	return nil
}
