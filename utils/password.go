package utils

import (
	"math/rand"
	"sync"
)

// Themed 4-character demo passwords handed out on approval.
var giftPasswords = []string{
	"wrap", "bows", "card", "joy!", "love", "give", "chrs", "gift", "prez",
	"neat", "cool", "yay!", "woo!", "wow!", "cute", "kiss", "hug!", "thks",
	"best", "time", "wish", "hope", "open", "peek", "tada", "yess", "win!",
	"glow", "star", "pink", "gold", "silk", "gems", "lace", "rose", "lily",
}

// PasswordIssuer hands out words from the list without repetition until the
// list is exhausted, then the used set resets. It is injected rather than
// package-global so tests run in isolation.
type PasswordIssuer struct {
	mu   sync.Mutex
	used map[string]bool
}

func NewPasswordIssuer() *PasswordIssuer {
	return &PasswordIssuer{used: make(map[string]bool)}
}

func (p *PasswordIssuer) Generate() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	available := make([]string, 0, len(giftPasswords))
	for _, w := range giftPasswords {
		if !p.used[w] {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		p.used = make(map[string]bool)
		return giftPasswords[rand.Intn(len(giftPasswords))]
	}
	pick := available[rand.Intn(len(available))]
	p.used[pick] = true
	return pick
}

// ReleaseAll forgets every issued password.
func (p *PasswordIssuer) ReleaseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.used = make(map[string]bool)
}
