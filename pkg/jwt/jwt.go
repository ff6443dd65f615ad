package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents JWT claims for both admin and merchant tokens.
// ApplicationID is set only on merchant-scoped tokens.
type Claims struct {
	UserID        uuid.UUID `json:"userId,omitempty"`
	Email         string    `json:"email,omitempty"`
	Role          string    `json:"role"`
	ApplicationID uuid.UUID `json:"applicationId,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// JWTService handles JWT operations
type JWTService struct {
	secret         []byte
	accessExpiry   time.Duration
	refreshExpiry  time.Duration
	merchantExpiry time.Duration
}

var signJWTToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewJWTService creates a new JWT service
func NewJWTService(secret string, accessExpiry, refreshExpiry, merchantExpiry time.Duration) *JWTService {
	return &JWTService{
		secret:         []byte(secret),
		accessExpiry:   accessExpiry,
		refreshExpiry:  refreshExpiry,
		merchantExpiry: merchantExpiry,
	}
}

// GenerateTokenPair generates access and refresh tokens for an admin user
func (s *JWTService) GenerateTokenPair(userID uuid.UUID, email, role string) (*TokenPair, error) {
	accessToken, err := s.signClaims(&Claims{UserID: userID, Email: email, Role: role}, s.accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.signClaims(&Claims{UserID: userID, Email: email, Role: role}, s.refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GenerateMerchantToken generates a short-lived token scoped to a single application.
func (s *JWTService) GenerateMerchantToken(applicationID uuid.UUID) (string, error) {
	return s.signClaims(&Claims{Role: "merchant", ApplicationID: applicationID}, s.merchantExpiry)
}

// ValidateToken validates a JWT token and returns the claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *JWTService) signClaims(claims *Claims, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signJWTToken(token, s.secret)
}
