// Package auth is a mock identity collaborator. The core only reads
// the current identity to prefill checkout shipping fields; anonymous
// sessions are valid.
package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

type Identity struct {
	ID    string
	Name  string
	Email string
}

// SplitName splits the display name into first and last parts for
// shipping prefill. Anything past the first space goes to the last
// name.
func (i Identity) SplitName() (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(i.Name), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

type Provider struct {
	mu      sync.Mutex
	current *Identity
}

func NewProvider() *Provider {
	return &Provider{}
}

// Login always succeeds; there is no credential check in the mock.
func (p *Provider) Login(name, email string) Identity {
	id := Identity{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	p.mu.Lock()
	p.current = &id
	p.mu.Unlock()
	return id
}

func (p *Provider) Logout() {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()
}

func (p *Provider) Current() (Identity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return Identity{}, false
	}
	return *p.current, true
}
