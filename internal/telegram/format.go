// Package telegram provides Telegram-specific utilities
package telegram

import "strings"

// MaxMessageLength is the maximum length for a Telegram message
const MaxMessageLength = 4000

// EscapeHTML escapes the characters Telegram's HTML parse mode reserves.
func EscapeHTML(text string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(text)
}

// Bold wraps text in HTML bold tags, escaping the content.
func Bold(text string) string {
	return "<b>" + EscapeHTML(text) + "</b>"
}

// Italic wraps text in HTML italic tags, escaping the content.
func Italic(text string) string {
	return "<i>" + EscapeHTML(text) + "</i>"
}
