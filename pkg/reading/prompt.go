package reading

import (
	"fmt"
	"strings"
)

// BuildPrompt 将问题和三张卡牌拼装成一条完整的解读提示词
// 未填写问题时使用 "General reading" 占位
func BuildPrompt(question string, cards []DrawnCard) string {
	if strings.TrimSpace(question) == "" {
		question = "General reading"
	}

	var b strings.Builder
	b.WriteString("You are Madame Luna, a playful, mystical, and slightly eccentric tarot reader.\n")
	fmt.Fprintf(&b, "The seeker asked: %q\n\n", question)
	b.WriteString("The cards drawn are:\n")

	for i, card := range cards {
		name := card.Name
		if card.IsReversed {
			name += " (Reversed)"
		}
		fmt.Fprintf(&b, "%d. %s: %s - %s\n", i+1, card.Position, name, card.Meaning)
	}

	b.WriteString("\nProvide a cohesive, mystical, and encouraging interpretation of this spread. ")
	b.WriteString(`Use your playful "Madame Luna" voice. Keep it to about 3-4 short paragraphs.`)

	return b.String()
}
