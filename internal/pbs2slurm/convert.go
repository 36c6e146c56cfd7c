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

import (
	"bufio"
	"fmt"
	"io"
)

// Stats counts what Convert did with the input.
type Stats struct {
	Lines       int
	Passthrough int
	Translated  map[DirectiveKind]int
}

// Convert streams a PBS script from r to w, translating recognized
// directives and passing everything else through byte-for-byte. Lines are
// handled strictly one at a time; the only error class is I/O failure.
func Convert(r io.Reader, w io.Writer, tr *Translator) (*Stats, error) {
	stats := &Stats{Translated: make(map[DirectiveKind]int)}
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)

	for {
		// ReadString keeps the terminator, so pass-through lines and the
		// final unterminated line survive unmodified.
		line, err := reader.ReadString('\n')
		if line != "" {
			stats.Lines++
			output := line
			if d := MatchDirective(line); d != nil {
				stats.Translated[d.Kind]++
				output = tr.Translate(d)
			} else {
				stats.Passthrough++
			}
			if _, werr := writer.WriteString(output); werr != nil {
				return nil, fmt.Errorf("failed to write output: %w", werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	return stats, nil
}
