package main

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// openBrowser opens url in the default browser without waiting for it.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		// Use "rundll32" for broader compatibility on Windows
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

// askForConfirmation asks a y/N question until it gets an answer.
// End of input counts as no.
func askForConfirmation(in *bufio.Reader, out io.Writer, prompt string) bool {
	for {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		response, err := in.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response == "y" || response == "yes" {
			return true
		} else if response == "n" || response == "no" || response == "" || err != nil {
			return false
		}
		// Ask again if input is invalid
	}
}
