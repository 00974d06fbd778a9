//go:build windows

package ui

import "os/exec"

func openURLCommand(url string) *exec.Cmd {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
}
