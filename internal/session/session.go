package session

import (
	"net/url"
	"strings"
	"time"

	"closetluna/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	nameCookie  = "user_name"
	phoneCookie = "user_phone"

	// MaxAge is how long the identity persists after its last write.
	MaxAge = 30 * 24 * time.Hour
)

// Store persists the visitor's name+phone identity across requests.
// Cookie-backed here; the interface keeps handlers independent of the
// mechanism so a server-side table could slot in later.
type Store interface {
	Get(c *fiber.Ctx) *domain.UserSession
	Set(c *fiber.Ctx, name, phone string) error
	Clear(c *fiber.Ctx)
}

type CookieStore struct {
	// Secure marks cookies HTTPS-only; enable in production.
	Secure bool
}

func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{Secure: secure}
}

// Get reads the persisted identity. Absence of either cookie means no
// session; that is not an error.
func (s *CookieStore) Get(c *fiber.Ctx) *domain.UserSession {
	name := decode(c.Cookies(nameCookie))
	phone := decode(c.Cookies(phoneCookie))
	if name == "" || phone == "" {
		return nil
	}
	return &domain.UserSession{Name: name, Phone: phone}
}

// Set persists both identity fields for MaxAge. Empty fields are rejected
// with ErrInvalidInput.
func (s *CookieStore) Set(c *fiber.Ctx, name, phone string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return domain.ErrInvalidInput
	}
	s.write(c, nameCookie, name, MaxAge)
	s.write(c, phoneCookie, phone, MaxAge)
	return nil
}

// Clear removes the identity immediately.
func (s *CookieStore) Clear(c *fiber.Ctx) {
	s.write(c, nameCookie, "", 0)
	s.write(c, phoneCookie, "", 0)
}

func (s *CookieStore) write(c *fiber.Ctx, name, value string, maxAge time.Duration) {
	ck := &fiber.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value), // names and phones carry spaces and '+'
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.Secure,
	}
	if maxAge > 0 {
		ck.MaxAge = int(maxAge.Seconds())
	} else {
		ck.Expires = time.Now().Add(-1 * time.Hour)
	}
	c.Cookie(ck)
}

func decode(v string) string {
	if v == "" {
		return ""
	}
	out, err := url.QueryUnescape(v)
	if err != nil {
		return ""
	}
	return out
}
