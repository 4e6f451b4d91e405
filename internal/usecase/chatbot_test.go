package usecase

import "testing"

func TestChatReply(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"", chatEmptyMessage},
		{"   ", chatEmptyMessage},
		{"How do I DONATE?", chatAnswers[0].reply},
		{"which NGO picks up", chatAnswers[1].reply},
		{"rewards?", chatAnswers[2].reply},
		{"thanks a lot", chatAnswers[3].reply},
		{"donate to an ngo", chatAnswers[0].reply},
		{"hello", chatGreeting},
	}

	for _, tc := range cases {
		if got := ChatReply(tc.message); got != tc.want {
			t.Fatalf("message %q: expected %q, got %q", tc.message, tc.want, got)
		}
	}
}
