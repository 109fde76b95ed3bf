package game

import "wordle_backend/internal/domain"

// Score evaluates a guess against the answer with the standard two-pass rule.
// Pass one marks exact positions and counts the unmatched answer letters.
// Pass two consumes those counts for misplaced letters so that a letter is
// never flagged more times than it appears in the answer.
// Both words must already be lowercase and the same length.
func Score(answer, guess string) []domain.LetterResult {
	results := make([]domain.LetterResult, len(guess))
	var remaining [26]int

	for i := 0; i < len(guess); i++ {
		if guess[i] == answer[i] {
			results[i] = domain.LetterCorrect
		} else {
			remaining[answer[i]-'a']++
		}
	}

	for i := 0; i < len(guess); i++ {
		if results[i] == domain.LetterCorrect {
			continue
		}
		c := int(guess[i] - 'a')
		if remaining[c] > 0 {
			remaining[c]--
			results[i] = domain.LetterWrongPosition
		} else {
			results[i] = domain.LetterWrong
		}
	}

	return results
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
