// Package flash carries one-shot messages across a redirect in a signed cookie.
//
// A message is written on the POST that issues the redirect and consumed by
// the next request that reads it; reading always clears the cookie, so a
// message is shown at most once.
package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yigit/cadastro/internal/pkg/apperrors"
)

// DefaultTTL bounds how long an unread message stays valid
const DefaultTTL = 5 * time.Minute

// Category selects how a message is styled
type Category string

const (
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
)

// Message is the outcome of the last registration
type Message struct {
	Name     string   `json:"name"`
	Known    bool     `json:"known"`
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

// Config defines flash cookie settings
type Config struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
	Issuer     string
}

type claims struct {
	Flash Message `json:"flash"`
	jwt.RegisteredClaims
}

// Store signs, sets and consumes flash cookies
type Store struct {
	config Config
	now    func() time.Time
}

// NewStore creates a new flash store
func NewStore(config Config) *Store {
	if config.Issuer == "" {
		config.Issuer = "cadastro"
	}
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	return &Store{config: config, now: time.Now}
}

// Encode signs msg into a compact token
func (s *Store) Encode(msg Message) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Flash: msg,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			ID:        uuid.New().String(),
		},
	})

	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign flash: %w", err)
	}
	return signed, nil
}

// Decode verifies a token produced by Encode
func (s *Store) Decode(value string) (*Message, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(value, parsed, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFlashInvalid, err)
	}
	return &parsed.Flash, nil
}

// Set attaches msg to the response
func (s *Store) Set(c *gin.Context, msg Message) error {
	value, err := s.Encode(msg)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.config.CookieName, value, int(s.config.TTL.Seconds()), "/", "", s.config.Secure, true)
	return nil
}

// Pop returns the pending message, if any, and clears the cookie.
// A missing cookie yields (nil, nil). A tampered or expired cookie is cleared
// and reported with ErrFlashInvalid.
func (s *Store) Pop(c *gin.Context) (*Message, error) {
	value, err := c.Cookie(s.config.CookieName)
	if errors.Is(err, http.ErrNoCookie) || value == "" {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.config.CookieName, "", -1, "/", "", s.config.Secure, true)

	return s.Decode(value)
}
