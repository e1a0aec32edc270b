// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package kernel

import (
	"sort"

	"github.com/joshwilliams/check-digital-ocean-kernel/app/digitalocean"
)

// Selection is the outcome of ranking a droplet's offered kernels
// against its configured one.
type Selection struct {
	// Current is the droplet's configured kernel.
	Current digitalocean.Kernel

	// Comparable holds the offered kernels matching the filter,
	// newest first.
	Comparable []digitalocean.Kernel

	// Newest is the first element of Comparable, nil when nothing
	// matched. A nil Newest means the verdict cannot be determined.
	Newest *digitalocean.Kernel
}

// UpToDate reports whether the current kernel is the newest comparable
// one. False when the comparable set is empty; callers must treat that
// case as undeterminable, not as outdated.
func (s Selection) UpToDate() bool {
	return s.Newest != nil && s.Newest.ID == s.Current.ID
}

// Select filters the offered kernels through f and ranks the survivors
// by ID descending. Pure computation; never fails on empty input.
func Select(current digitalocean.Kernel, offered []digitalocean.Kernel, f Filter) Selection {
	sel := Selection{Current: current}

	for _, k := range offered {
		if f.Matches(k.Name) {
			sel.Comparable = append(sel.Comparable, k)
		}
	}

	sort.SliceStable(sel.Comparable, func(i, j int) bool {
		return sel.Comparable[i].ID > sel.Comparable[j].ID
	})

	if len(sel.Comparable) > 0 {
		sel.Newest = &sel.Comparable[0]
	}
	return sel
}
