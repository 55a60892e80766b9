// Copyright © 2025 tohtml contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build linux

package shell

import "testing"

func TestParseStat(t *testing.T) {
	tests := []struct {
		name string
		stat string
		comm string
		ppid int
		ok   bool
	}{
		{
			name: "plain",
			stat: "1234 (bash) S 1000 1234 1234 34816 0 4194304",
			comm: "bash",
			ppid: 1000,
			ok:   true,
		},
		{
			name: "comm with spaces and parens",
			stat: "42 (tmux: server (1)) S 7 42 42 0",
			comm: "tmux: server (1)",
			ppid: 7,
			ok:   true,
		},
		{
			name: "truncated",
			stat: "42 (x)",
			ok:   false,
		},
		{
			name: "garbage",
			stat: "not a stat line",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comm, ppid, err := parseStat(tt.stat)
			if tt.ok != (err == nil) {
				t.Fatalf("err = %v, ok = %v", err, tt.ok)
			}
			if !tt.ok {
				return
			}
			if comm != tt.comm || ppid != tt.ppid {
				t.Errorf("parseStat = (%q, %d), want (%q, %d)", comm, ppid, tt.comm, tt.ppid)
			}
		})
	}
}
