//go:build !windows && !darwin

package ui

import "os/exec"

func openURLCommand(url string) *exec.Cmd {
	return exec.Command("xdg-open", url)
}
