// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/run.go
// Summary: Runs a command under a pseudoterminal and captures output.
// Usage: The CLI feeds the captured bytes to the converter.
// Notes: Programs only emit colors when they believe they talk to a
//        terminal, hence the pty.

package shell

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Run executes command with `prog -c command` under a pty and returns
// everything the process wrote. The pty mirrors the invoking terminal's
// size so programs wrap like they would interactively. A non-zero exit
// is returned as the error alongside the captured output.
func Run(command, prog string) (string, error) {
	if prog == "" {
		prog = "bash"
	}
	cmd := exec.Command(prog, "-c", command)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	f, err := pty.StartWithSize(cmd, winsize())
	if err != nil {
		return "", fmt.Errorf("start %q under pty: %w", prog, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	// The pty returns an error (EIO on Linux) once the child exits and
	// the slave side closes; that is the normal end of output.
	_, _ = io.Copy(&buf, f)

	waitErr := cmd.Wait()
	return normalize(buf.String()), waitErr
}

// winsize reports the invoking terminal's size, or 80x24 when stdout is
// not a terminal.
func winsize() *pty.Winsize {
	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cols, rows = w, h
	}
	return &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}
}

// normalize undoes the pty's output cooking: CRLF becomes LF, stray
// carriage returns are dropped, trailing whitespace is trimmed.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimRight(s, " \t\n")
}
