//go:build linux

package main

import "golang.org/x/sys/unix"

// waitForKeypress reads a single byte with echo and line buffering disabled,
// restoring the original terminal state afterwards.
func waitForKeypress(fd int) error {
	state, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}

	updated := *state
	updated.Lflag &^= unix.ECHO | unix.ICANON
	updated.Cc[unix.VMIN] = 1
	updated.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &updated); err != nil {
		return err
	}
	defer func() { _ = unix.IoctlSetTermios(fd, unix.TCSETS, state) }()

	buf := make([]byte, 1)
	_, err = unix.Read(fd, buf)
	return err
}
