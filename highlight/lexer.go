// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/lexer.go
// Summary: Picks the chroma lexer for a command line.
// Notes: Commands invoking a local script are classified with enry
//        (shebang and content) so the prompt highlights in that
//        script's language; everything else is bash.

package highlight

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// scripts larger than this only have their head read for detection.
const detectHeadBytes = 8 * 1024

// lexerFor returns the lexer used to tokenize a command line.
func lexerFor(command string) chroma.Lexer {
	if name := scriptLanguage(command); name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Get("bash"); l != nil {
		return l
	}
	return lexers.Fallback
}

// scriptLanguage reports the language of the script a command invokes,
// or "" when the command is an ordinary shell line. Only a first word
// that names a readable local file qualifies.
func scriptLanguage(command string) string {
	word := firstWord(command)
	if word == "" || !strings.ContainsRune(word, '/') {
		return ""
	}
	info, err := os.Stat(word)
	if err != nil || info.IsDir() {
		return ""
	}
	head, err := readHead(word)
	if err != nil {
		return ""
	}
	lang := enry.GetLanguage(filepath.Base(word), head)
	if lang == "" || lang == "Shell" {
		return ""
	}
	return strings.ToLower(lang)
}

func firstWord(command string) string {
	command = strings.TrimLeft(command, " \t")
	if i := strings.IndexAny(command, " \t"); i >= 0 {
		return command[:i]
	}
	return command
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf := make([]byte, detectHeadBytes)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return nil, err
	}
	return buf[:n], nil
}
