package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier decouples the admin login handler from where the
// credentials live, so a real user store can replace the static pair later
// without touching the workflow.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier checks against a single configured username and a bcrypt
// hash of the configured password.
type StaticVerifier struct {
	username     string
	passwordHash []byte
}

func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{username: username, passwordHash: hash}, nil
}

func (v *StaticVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}
