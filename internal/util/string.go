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

package util

import "strings"

// MemMegabytes converts a PBS memory amount to megabytes, the unit size used
// by Slurm. Sub-megabyte amounts truncate towards zero. The second return
// value is false for an unrecognized unit. Word-size units (w, kw, ...) are
// valid PBS but are not supported here.
func MemMegabytes(amount int64, unit string) (int64, bool) {
	switch strings.ToLower(unit) {
	case "b":
		return amount / (1 << 20), true
	case "kb":
		return amount / (1 << 10), true
	case "mb":
		return amount, true
	case "gb":
		return amount * (1 << 10), true
	case "tb":
		return amount * (1 << 20), true
	default:
		return 0, false
	}
}
