package llm

import (
	"fmt"
	"strings"
)

// extractJSON locates the JSON object inside free-form LLM output by
// slicing from the first '{' to the last '}'. The substring must parse
// as a whole valid object downstream; no repair is attempted here.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return text[start : end+1], nil
}
