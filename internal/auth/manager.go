package auth

import (
	"crypto/ed25519"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/utils"
)

const accessTokenType = "access"

// AuthManager verifies access tokens minted by the identity service.
type AuthManager interface {
	Parse(tokenStr string) (*Claims, error)
}

type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id" validate:"required,uuid"`
	TokenType string `json:"token_type"`
}

// ProfileID is the user id carried by the token. Profiles share it.
func (c *Claims) ProfileID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

type jwtManager struct {
	signingMethod jwt.SigningMethod
	publicKey     ed25519.PublicKey
	parser        *jwt.Parser
}

func NewJWTManager(cfg config.Config) (AuthManager, error) {
	if cfg.Auth.Algorithm != jwt.SigningMethodEdDSA.Alg() {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Auth.Algorithm)
	}

	publicKey, err := utils.ParseEdDSAPublicKey(cfg.Auth.PublicKey)
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Auth.Issuer))
	}

	return &jwtManager{
		signingMethod: jwt.SigningMethodEdDSA,
		publicKey:     publicKey,
		parser:        jwt.NewParser(opts...),
	}, nil
}

func (m *jwtManager) Parse(tokenStr string) (*Claims, error) {
	token, err := m.parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != m.signingMethod.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}

		return m.publicKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.TokenType != accessTokenType {
		return nil, jwt.ErrTokenUnverifiable
	}

	if _, err := claims.ProfileID(); err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
