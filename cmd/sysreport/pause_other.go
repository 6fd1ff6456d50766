//go:build !linux

package main

import (
	"bufio"
	"os"
)

// waitForKeypress waits for Enter on platforms without raw termios access.
func waitForKeypress(int) error {
	_, err := bufio.NewReader(os.Stdin).ReadString('\n')
	return err
}
