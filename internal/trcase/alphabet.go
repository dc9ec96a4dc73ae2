package trcase

// alphabet is the set of letters accepted as Turkish/Latin text.
// It covers the 29 Turkish letters, q/w/x, and circumflexed vowels.
var alphabet = func() map[rune]struct{} {
	const letters = "abcçdefgğhıijklmnoöprsştuüvyzwqxâîû" +
		"ABCÇDEFGĞHIİJKLMNOÖPRSŞTUÜVYZWQXÂÎÛ"
	m := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		m[r] = struct{}{}
	}
	return m
}()

// InAlphabet reports whether r is a Turkish/Latin letter.
func InAlphabet(r rune) bool {
	_, ok := alphabet[r]
	return ok
}
