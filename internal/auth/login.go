package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

type Login struct {
	passwordHash string
	tokens       TokenStore
}

func NewLogin(passwordHash string, tokens TokenStore) *Login {
	return &Login{passwordHash: passwordHash, tokens: tokens}
}

// Execute checks the console password against the configured bcrypt
// hash and issues a session token. A wrong password returns ("",
// false) with no detail about why.
func (l *Login) Execute(ctx context.Context, password string) (string, bool) {
	if l.passwordHash == "" {
		return "", false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(l.passwordHash), []byte(password)); err != nil {
		return "", false
	}

	token, err := l.tokens.Issue(ctx)
	if err != nil {
		return "", false
	}
	return token, true
}
