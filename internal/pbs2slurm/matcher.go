/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * CraneSched is licensed under Mulan PSL v2.
 * You can use this software according to the terms and conditions of
 * the Mulan PSL v2.
 * You may obtain a copy of Mulan PSL v2 at:
 *          http://license.coscl.org.cn/MulanPSL2
 * THIS SOFTWARE IS PROVIDED ON AN "AS IS" BASIS,
 * WITHOUT WARRANTIES OF ANY KIND,
 * EITHER EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO NON-INFRINGEMENT,
 * MERCHANTABILITY OR FIT FOR A PARTICULAR PURPOSE.
 * See the Mulan PSL v2 for more details.
 */

package pbs2slurm

import "regexp"

// DirectiveKind enumerates the PBS directive forms this tool recognizes.
type DirectiveKind int

const (
	DirectiveQueue DirectiveKind = iota
	DirectiveJobName
	DirectiveAccount
	DirectiveProcessCount
	DirectivePerVirtualMemory
	DirectiveMemory
	DirectiveWalltime
	DirectiveEmailEvents
	DirectiveEmailAddress
	DirectiveOutputPath
	DirectiveErrorPath
	DirectiveWorkdirChange
)

var directiveKindNames = []string{
	"Queue",
	"JobName",
	"Account",
	"ProcessCount",
	"PerVirtualMemory",
	"Memory",
	"Walltime",
	"EmailEvents",
	"EmailAddress",
	"OutputPath",
	"ErrorPath",
	"WorkdirChange",
}

func (k DirectiveKind) String() string {
	if int(k) < len(directiveKindNames) {
		return directiveKindNames[k]
	}
	return "Unknown"
}

// ParsedDirective is the result of recognizing one script line. Fields holds
// the named captures that participated in the match; an optional group that
// did not participate is absent from the map, not empty.
type ParsedDirective struct {
	Kind   DirectiveKind
	Fields map[string]string
}

func (d *ParsedDirective) Field(name string) (string, bool) {
	v, ok := d.Fields[name]
	return v, ok
}

type recognizer struct {
	kind DirectiveKind
	re   *regexp.Regexp
}

// One pattern per directive form, tried in order. All patterns are anchored
// at the start of the line and keyed by a distinct literal flag token, so at
// most one can match a well-formed line. There are deliberately no trailing
// anchors: "#PBS -m abet" matches its first three characters, as in PBS.
var recognizers = []recognizer{
	{DirectiveQueue, regexp.MustCompile(`^#PBS\s+-q\s+(?P<queue>\S+)`)},
	{DirectiveJobName, regexp.MustCompile(`^#PBS\s+-N\s+(?P<name>\S+)`)},
	{DirectiveAccount, regexp.MustCompile(`^#PBS\s+-A\s+(?P<account>\S+)`)},
	{DirectiveProcessCount, regexp.MustCompile(`^#PBS\s+-l\s+(?:procs|nodes)=(?P<procs>\d+)(?:\s*,\s*(?:tpn|ppn)\s*=\s*(?P<tasks_per_node>\d+))?`)},
	{DirectivePerVirtualMemory, regexp.MustCompile(`^#PBS\s+-l\s+pvmem=(?P<pvmem>\d+)(?P<pvmemunit>\w+)`)},
	{DirectiveMemory, regexp.MustCompile(`^#PBS\s+-l\s+mem=(?P<mem>\d+)(?P<memunit>\w+)`)},
	// Days, hours and minutes are all optional in PBS notation, although the
	// TORQUE docs do not seem to mention days.
	{DirectiveWalltime, regexp.MustCompile(`^#PBS\s+-l\s+walltime=(?:(?:(?:(?P<days>\d+):)?(?P<hours>\d+):)?(?P<mins>\d+):)?(?P<secs>\d+)`)},
	{DirectiveEmailEvents, regexp.MustCompile(`^#PBS\s+-m\s+(?P<email_events>[abe]{1,3})`)},
	{DirectiveEmailAddress, regexp.MustCompile(`^#PBS\s+-M\s+(?P<email_address>\S+)`)},
	{DirectiveOutputPath, regexp.MustCompile(`^#PBS\s+-o\s+(?P<outpath>\S+)`)},
	{DirectiveErrorPath, regexp.MustCompile(`^#PBS\s+-e\s+(?P<errpath>\S+)`)},
	{DirectiveWorkdirChange, regexp.MustCompile(`^cd\s+\$PBS_O_WORKDIR`)},
}

// MatchDirective tests one script line (terminator included, if any) against
// the recognizer set and returns the parsed directive, or nil if no pattern
// matches.
func MatchDirective(line string) *ParsedDirective {
	for _, r := range recognizers {
		idx := r.re.FindStringSubmatchIndex(line)
		if idx == nil {
			continue
		}
		fields := make(map[string]string)
		for i, name := range r.re.SubexpNames() {
			if i == 0 || name == "" {
				continue
			}
			if idx[2*i] < 0 {
				continue
			}
			fields[name] = line[idx[2*i]:idx[2*i+1]]
		}
		return &ParsedDirective{Kind: r.kind, Fields: fields}
	}
	return nil
}
