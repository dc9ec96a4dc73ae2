package classify

import (
	"strings"
	"testing"
	"time"
)

// TestOversizedToken verifies that tokens over the limit are not classified.
func TestOversizedToken(t *testing.T) {
	c := newDefault(t)

	huge := strings.Repeat("a", DefaultMaxTokenBytes+1)
	got := c.Classify(huge)
	if len(got.Tokens) != 1 || got.Tokens[0].Tag != OOV || got.Tokens[0].Text != huge {
		t.Errorf("want one OOV token for oversized input, got %d tokens", len(got.Tokens))
	}
}

// TestAdversarialTokens verifies classification finishes quickly on
// inputs shaped to stress recursion and pattern matching.
func TestAdversarialTokens(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		name  string
		input string
	}{
		{"deep wrapper", strings.Repeat("(", 20000) + "x" + strings.Repeat(")", 20000)},
		{"alternating marks", strings.Repeat("a.", 20000)},
		{"alternating wrappers", strings.Repeat("(a", 10000) + strings.Repeat(")", 10000)},
		{"many smileys", strings.Repeat(":)", 20000)},
		{"many emoticons", strings.Repeat("😀a", 10000)},
		{"apostrophe chain", strings.Repeat("a'", 20000)},
		{"long digit run", strings.Repeat("1234567890", 5000)},
		{"email-shaped", strings.Repeat("a.", 2000) + "@" + strings.Repeat("b.", 2000) + "com"},
		{"mojibake", strings.Repeat("Ã¶", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			got := c.Classify(tt.input)
			elapsed := time.Since(start)

			const maxDuration = 5 * time.Second
			if elapsed > maxDuration {
				t.Errorf("took %v, exceeds %v limit", elapsed, maxDuration)
			}
			if len(got.Tokens) == 0 {
				t.Error("no tokens returned")
			}
		})
	}
}

// TestConcurrentSafety verifies the classifier is safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	c := newDefault(t)
	inputs := []string{
		"merhaba!",
		"(ana-baba)",
		"“Ali’nin”",
		":):)",
		"info@example.com.",
	}

	const numGoroutines = 100
	done := make(chan bool, numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("goroutine %d panicked: %v", id, r)
				}
				done <- true
			}()

			for j := range 100 {
				_ = c.Classify(inputs[j%len(inputs)])
			}
		}(i)
	}

	for range numGoroutines {
		<-done
	}
}

// TestMalformedUTF8 verifies handling of invalid UTF-8 sequences.
func TestMalformedUTF8(t *testing.T) {
	c := newDefault(t)
	inputs := []string{
		"mer\xFF\xFEhaba",
		"user@\xFFexample.com",
		"\xC3",
		"(\xC0\x80)",
	}

	for _, in := range inputs {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Classify(%q) panicked: %v", in, r)
				}
			}()
			got := c.Classify(in)
			if len(got.Tokens) == 0 {
				t.Errorf("Classify(%q) returned no tokens", in)
			}
			assertLossless(t, got)
		})
	}
}
