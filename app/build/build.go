// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package build exposes build-time metadata for the plugin binaries.
package build

import "fmt"

// Overridden at build time via -ldflags.
var (
	Rev  = "latest"
	Tag  = "unreleased"
	Time = "unknown"
)

const (
	AuthorName  = "Josh Williams"
	AuthorEmail = "joshwilliams@users.noreply.github.com"
	Copyright   = "(c) 2026 Josh Williams"
)

func GetVersion() string {
	return fmt.Sprintf("%s.%s", Tag, Rev)
}
