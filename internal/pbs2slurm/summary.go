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
	"io"
	"strconv"

	"Pbs2Slurm/internal/util"

	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/sjson"
)

var allDirectiveKinds = []DirectiveKind{
	DirectiveQueue,
	DirectiveJobName,
	DirectiveAccount,
	DirectiveProcessCount,
	DirectivePerVirtualMemory,
	DirectiveMemory,
	DirectiveWalltime,
	DirectiveEmailEvents,
	DirectiveEmailAddress,
	DirectiveOutputPath,
	DirectiveErrorPath,
	DirectiveWorkdirChange,
}

// FormatSummaryTable renders the per-directive conversion counts as a
// borderless table.
func FormatSummaryTable(stats *Stats, w io.Writer) {
	table := tablewriter.NewWriter(w)
	util.SetBorderlessTable(table)
	table.SetHeader([]string{"Directive", "Count"})

	for _, kind := range allDirectiveKinds {
		if count := stats.Translated[kind]; count > 0 {
			table.Append([]string{kind.String(), strconv.Itoa(count)})
		}
	}
	table.Append([]string{"Passthrough", strconv.Itoa(stats.Passthrough)})
	table.Append([]string{"Total", strconv.Itoa(stats.Lines)})
	table.Render()
}

// FormatSummaryJson renders the conversion counts as a JSON document, all
// directive kinds included.
func FormatSummaryJson(stats *Stats) string {
	output := "{}"
	output, _ = sjson.Set(output, "lines", stats.Lines)
	output, _ = sjson.Set(output, "passthrough", stats.Passthrough)
	for _, kind := range allDirectiveKinds {
		output, _ = sjson.Set(output, "translated."+kind.String(), stats.Translated[kind])
	}
	return output
}
