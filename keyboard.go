package main

// verdictRank orders verdicts as a small lattice: absent < present < correct.
// The keyboard shows the best evidence seen so far for each letter, so a
// hint only ever moves up this order.
func verdictRank(verdict string) int {
	switch verdict {
	case VerdictCorrect:
		return 2
	case VerdictPresent:
		return 1
	case VerdictAbsent:
		return 0
	default:
		return -1
	}
}

// mergeKeyboardHint upgrades the stored hint for letter to verdict if the
// new verdict ranks higher. Correct is never downgraded.
func mergeKeyboardHint(hints map[string]string, letter, verdict string) {
	if verdictRank(verdict) > verdictRank(hints[letter]) {
		hints[letter] = verdict
	}
}
