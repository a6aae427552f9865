package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/gookit/color"
	"golang.org/x/sys/unix"
)

// setupColor enables or disables ANSI color codes in diagnostics.
func setupColor(mode string) error {
	switch mode {
	case "auto":
		color.Enable = isatty()
	case "always":
		color.ForceOpenColor()
		color.Enable = true
	case "never":
		color.Enable = false
	default:
		return fmt.Errorf("invalid -c value: %s", mode)
	}
	return nil
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var rePosition = regexp.MustCompile(`(?m)^(\S+:\d+:\d+): (.+)$`)

// colorize dims the positions and highlights the messages of diagnostics.
func colorize(message string) string {
	if !color.Enable {
		return message
	}
	return rePosition.ReplaceAllStringFunc(message, func(line string) string {
		m := rePosition.FindStringSubmatch(line)
		return color.Gray.Sprint(m[1]+":") + " " + color.Red.Sprint(m[2])
	})
}
