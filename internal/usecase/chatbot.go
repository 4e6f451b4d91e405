package usecase

import "strings"

const (
	chatGreeting     = "Hi! I'm your FoodBridge assistant. How can I help you today?"
	chatEmptyMessage = "Please type a message first."
)

var chatAnswers = []struct {
	keyword string
	reply   string
}{
	{"donate", "You can donate food via the Donate page. Just fill in the food details and submit!"},
	{"ngo", "We partner with nearby NGOs to collect your food donations efficiently."},
	{"reward", "Each donation earns you reward points redeemable at our partner restaurants!"},
	{"thank", "You're very welcome!"},
}

// ChatReply answers the help widget. The first matching keyword wins.
func ChatReply(message string) string {
	if strings.TrimSpace(message) == "" {
		return chatEmptyMessage
	}
	msg := strings.ToLower(message)
	for _, answer := range chatAnswers {
		if strings.Contains(msg, answer.keyword) {
			return answer.reply
		}
	}
	return chatGreeting
}
