package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"orderdesk/internal/entities"
)

// Claims выпускает платформа авторизации консоли.
type Claims struct {
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Verify проверяет подпись HS256 и срок жизни, затем собирает Principal.
func (v *Verifier) Verify(token string) (entities.Principal, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return principalFromClaims(claims)
}

func principalFromClaims(claims *Claims) (entities.Principal, error) {
	if claims.Subject == "" {
		return entities.Principal{}, ErrMissingSubject
	}

	principal := entities.Principal{
		UserID:       claims.Subject,
		Role:         entities.Role(claims.Role),
		RestaurantID: claims.RestaurantID,
	}

	switch principal.Role {
	case entities.RoleAdmin:
	case entities.RoleRestaurantOwner:
		if principal.RestaurantID == "" {
			return entities.Principal{}, ErrMissingRestaurant
		}
	default:
		return entities.Principal{}, fmt.Errorf("%w: %q", ErrUnknownRole, claims.Role)
	}

	return principal, nil
}
