package words

import (
	"bufio"
	"crypto/hmac"
	"crypto/sha256"
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Embedded defaults keep the server bootable with no files configured.

//go:embed answers.txt
var embeddedAnswers string

//go:embed allowed.txt
var embeddedAllowed string

// ErrEmptyWordList means no usable answers were loaded. Startup must fail on it.
var ErrEmptyWordList = errors.New("words: answers list is empty")

// Catalog holds the answer list, the allowed-guess set (always a superset of
// answers) and a per-date cache of derived daily answers.
type Catalog struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{}
	salt       string

	mu    sync.RWMutex
	daily map[string]string
}

// New builds a catalog from in-memory lists. Words are lowercased, anything
// that is not exactly five ASCII letters is dropped, and duplicates collapse
// to their first occurrence so each answer gets one slot in the daily draw.
func New(answers, allowed []string, salt string) (*Catalog, error) {
	ans := normalize(answers)
	if len(ans) == 0 {
		return nil, ErrEmptyWordList
	}

	c := &Catalog{
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
		salt:       salt,
		daily:      make(map[string]string),
	}
	for _, w := range normalize(allowed) {
		c.allowedSet[w] = struct{}{}
	}
	return c, nil
}

// Load reads word lists from the given files, falling back to the embedded
// defaults for any empty path, and builds a catalog from them.
func Load(answersPath, allowedPath, salt string) (*Catalog, error) {
	answers := strings.Split(embeddedAnswers, "\n")
	if answersPath != "" {
		var err error
		answers, err = readWordFile(answersPath)
		if err != nil {
			return nil, fmt.Errorf("read answers list: %w", err)
		}
	}

	allowed := strings.Split(embeddedAllowed, "\n")
	if allowedPath != "" {
		var err error
		allowed, err = readWordFile(allowedPath)
		if err != nil {
			return nil, fmt.Errorf("read allowed list: %w", err)
		}
	}

	return New(answers, allowed, salt)
}

// DateKey returns the UTC calendar date as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyWord returns the answer for t's UTC date. The same date always maps to
// the same answer, across calls and across restarts.
func (c *Catalog) DailyWord(t time.Time) string {
	key := DateKey(t)

	c.mu.RLock()
	w, ok := c.daily[key]
	c.mu.RUnlock()
	if ok {
		return w
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if w, ok := c.daily[key]; ok {
		return w
	}
	w = c.answers[dailyIndex(key, c.salt, len(c.answers))]
	c.daily[key] = w
	return w
}

// dailyIndex maps a date key to an answer index via HMAC-SHA256(salt, key).
func dailyIndex(dateKey, salt string, n int) int {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dateKey))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// IsAllowed reports whether w is a valid guess word.
func (c *Catalog) IsAllowed(w string) bool {
	_, ok := c.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is in the answer list.
func (c *Catalog) IsAnswer(w string) bool {
	_, ok := c.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns the loaded word counts: (answers, allowed).
func (c *Catalog) Stats() (answersCount, allowedCount int) {
	return len(c.answers), len(c.allowedSet)
}

// readWordFile loads one word per line, lowercased, keeping valid words only.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

func normalize(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	var out []string
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != 5 || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
