//go:build darwin

package ui

import "os/exec"

func openURLCommand(url string) *exec.Cmd {
	return exec.Command("open", url)
}
