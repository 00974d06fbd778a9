package ui

import (
	"log"

	"github.com/atotto/clipboard"
)

func readClipboard() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		log.Printf("Clipboard read failed: %v", err)
		return ""
	}
	return s
}

func writeClipboard(s string) {
	if err := clipboard.WriteAll(s); err != nil {
		log.Printf("Clipboard write failed: %v", err)
	}
}
