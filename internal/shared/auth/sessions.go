package auth

import (
	"context"
	"fmt"
)

// Sessions issues tokens and checks them against the session store.
type Sessions struct {
	Issuer *Issuer
	Store  Store
}

func NewSessions(issuer *Issuer, store Store) *Sessions {
	return &Sessions{Issuer: issuer, Store: store}
}

// Start issues a token and records its session.
func (s *Sessions) Start(ctx context.Context, userID, email string) (Token, error) {
	token, claims, err := s.Issuer.Issue(userID, email)
	if err != nil {
		return Token{}, err
	}
	if err := s.Store.Save(ctx, claims.SessionID, userID, s.Issuer.TTL()); err != nil {
		return Token{}, fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Verify parses the token and requires its session to still be live.
func (s *Sessions) Verify(ctx context.Context, raw string) (Claims, error) {
	claims, err := s.Issuer.Parse(raw)
	if err != nil {
		return Claims{}, err
	}
	live, err := s.Store.Exists(ctx, claims.SessionID)
	if err != nil {
		return Claims{}, fmt.Errorf("lookup session: %w", err)
	}
	if !live {
		return Claims{}, ErrSessionRevoked
	}
	return claims, nil
}

// End revokes a session id.
func (s *Sessions) End(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Store.Revoke(ctx, sessionID)
}
