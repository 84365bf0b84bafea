package usecase

import (
	"fmt"
	"strings"

	"expense-assistant/internal/assistant"
)

// buildPrompt embeds message and the category set into PromptTemplate.
func buildPrompt(message string) string {
	quoted := make([]string, len(assistant.Categories))
	for i, c := range assistant.Categories {
		quoted[i] = fmt.Sprintf("%q", string(c))
	}
	return fmt.Sprintf(PromptTemplate, strings.Join(quoted, ", "), message)
}
