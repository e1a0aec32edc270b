// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package kernel

import (
	"regexp"
	"strings"
)

// Filter identifies the kernels comparable to a droplet's current one.
//
// Matching is structural where both names parse: same family, version
// and architecture, plus for Ubuntu the same build line with only the
// patch number varying. For names that do not parse into the
// conventional fields the filter degrades to the textual form: an
// end-anchored pattern for the Ubuntu build-line case, a plain prefix
// match otherwise.
type Filter struct {
	current Name
	ok      bool

	base    string
	pattern *regexp.Regexp // anchored Ubuntu build-line pattern, nil otherwise
}

// BuildFilter derives the comparability filter from the full name of
// the droplet's currently configured kernel.
//
// A name with fewer than three fields yields a partial prefix filter
// rather than an error; that mirrors an unusual provider response and
// is not worth dying over.
func BuildFilter(current string) Filter {
	fields := strings.Fields(current)

	n := len(fields)
	if n > 3 {
		n = 3
	}
	f := Filter{base: strings.Join(fields[:n], " ")}

	name, ok := ParseName(current)
	if !ok {
		return f
	}
	f.current = name
	f.ok = true

	if name.IsUbuntu() && name.Build != "" {
		f.pattern = buildLinePattern(f.base, name.Build)
	}
	return f
}

// buildLinePattern anchors the base triple plus the build string with
// the patch segment wildcarded, so "vmlinuz-4.4.0-31-generic" matches
// any "vmlinuz-4.4.0-<digits>-generic" but not variant suffixes like
// "-docker-memlimit".
func buildLinePattern(base, build string) *regexp.Regexp {
	segments := strings.Split(build, "-")
	for len(segments) <= patchIndex {
		segments = append(segments, "")
	}

	var b strings.Builder
	b.WriteString("^")
	b.WriteString(regexp.QuoteMeta(base))
	b.WriteString(" ")
	for i, segment := range segments {
		if i > 0 {
			b.WriteString("-")
		}
		if i == patchIndex {
			b.WriteString(`\d+`)
			continue
		}
		b.WriteString(regexp.QuoteMeta(segment))
	}
	b.WriteString("$")

	return regexp.MustCompile(b.String())
}

// Matches reports whether the candidate kernel name is comparable to
// the current one.
func (f Filter) Matches(candidate string) bool {
	if f.ok {
		if cand, ok := ParseName(candidate); ok {
			if !f.current.sameBase(cand) {
				return false
			}
			if f.pattern != nil {
				return f.current.sameBuildLine(cand)
			}
			return true
		}
	}

	// textual fallback for unparseable names
	if f.pattern != nil {
		return f.pattern.MatchString(candidate)
	}
	return strings.HasPrefix(candidate, f.base)
}

// String returns the textual form of the filter for diagnostics.
func (f Filter) String() string {
	if f.pattern != nil {
		return f.pattern.String()
	}
	return f.base
}
