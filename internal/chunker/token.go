package chunker

// TokensPerChar is the heuristic divisor for estimating tokens (chars/4).
const TokensPerChar = 4

// EstimateTokens approximates the token count of a text. The estimate only
// needs to be cheap and monotonically consistent so that accumulating
// segments against a budget is stable; it is not an exact tokenizer.
func EstimateTokens(text string) int {
	return len(text) / TokensPerChar
}
