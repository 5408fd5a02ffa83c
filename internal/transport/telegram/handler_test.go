package telegram

import (
	"testing"

	"github.com/go-telegram/bot/models"
)

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/addkeyword python, bot", "python, bot"},
		{"/addkeyword", ""},
		{"/addkeyword   ", ""},
		{"/grant 42 30", "42 30"},
	}

	for _, tt := range tests {
		if got := commandArgs(tt.in); got != tt.want {
			t.Errorf("commandArgs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJobCardDetails(t *testing.T) {
	msg := &models.Message{
		Text: "💼 Python bot developer\n💰 Budget: 250–750 EUR",
		ReplyMarkup: &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{
					{Text: "⚡ Proposal", URL: "https://aff.example.com/?l=https://example.com/1"},
					{Text: "🔗 Original", URL: "https://example.com/1"},
				},
				{
					{Text: "💾 Keep", CallbackData: callbackKeep},
				},
			},
		},
	}

	title, url := jobCardDetails(msg)
	if title != "Python bot developer" {
		t.Errorf("title = %q", title)
	}
	if url != "https://example.com/1" {
		t.Errorf("url = %q, want the original link", url)
	}
}

func TestJobCardDetailsNoMarkup(t *testing.T) {
	msg := &models.Message{Text: "💼 Lone title"}
	title, url := jobCardDetails(msg)
	if title != "Lone title" || url != "" {
		t.Errorf("got (%q, %q)", title, url)
	}
}
