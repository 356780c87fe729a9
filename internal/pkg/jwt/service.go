package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the authenticated subject (the account email) and the
// role the caller logged in as. The role is the one asserted at login
// time, not re-resolved on later requests.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Issue(email, role string) (string, error)
	Validate(tokenString string) (Claims, error)
}

type HMACService struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

func NewHMACService(secret string, ttl time.Duration) *HMACService {
	return &HMACService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *HMACService) Issue(email, role string) (string, error) {
	if len(s.secret) == 0 || s.ttl <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) Validate(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return s.now() }),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.Email == "" || c.Role == "" {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
