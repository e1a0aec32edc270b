// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package kernel decides whether a droplet's configured boot kernel is
// the newest comparable kernel the provider offers. Comparable means
// same OS family, version and architecture, and for Ubuntu
// additionally the same kernel build line with only the patch number
// varying (Ubuntu backports several build lines, e.g. hardened or
// container variants, under one base image; those are not
// interchangeable upgrade candidates).
package kernel

import "strings"

// Name is a provider kernel name decomposed into its conventional
// whitespace-delimited fields, e.g.
// "Ubuntu 16.04 x64 vmlinuz-4.4.0-31-generic".
type Name struct {
	Family  string // "Ubuntu", "CentOS", ...
	Version string // "16.04"
	Arch    string // "x64"
	Build   string // remainder, "vmlinuz-4.4.0-31-generic"; empty when absent
}

// patchIndex is the dash-delimited segment of the build string that
// carries the patch number ("31" in "vmlinuz-4.4.0-31-generic").
const patchIndex = 2

// ParseName splits a kernel name into its fields. ok is false when the
// name carries fewer than the three conventional fields.
func ParseName(s string) (Name, bool) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return Name{}, false
	}

	n := Name{
		Family:  fields[0],
		Version: fields[1],
		Arch:    fields[2],
	}
	if len(fields) > 3 {
		n.Build = strings.Join(fields[3:], " ")
	}
	return n, true
}

// IsUbuntu reports whether the name belongs to the Ubuntu family,
// where build lines must be told apart.
func (n Name) IsUbuntu() bool {
	return strings.HasPrefix(n.Family, "Ubuntu")
}

// Base returns the "{OS} {version} {arch}" triple.
func (n Name) Base() string {
	return n.Family + " " + n.Version + " " + n.Arch
}

func (n Name) sameBase(o Name) bool {
	return n.Family == o.Family && n.Version == o.Version && n.Arch == o.Arch
}

// PatchNumber returns the patch segment of the build string, if the
// build has one.
func (n Name) PatchNumber() (string, bool) {
	segments := strings.Split(n.Build, "-")
	if len(segments) <= patchIndex {
		return "", false
	}
	return segments[patchIndex], true
}

// sameBuildLine reports whether o carries the same build line as n:
// identical dash-delimited segments except the patch segment, which in
// o must be purely numeric. Variant suffixes such as
// "-docker-memlimit" change the segment count and therefore fail.
func (n Name) sameBuildLine(o Name) bool {
	cur := strings.Split(n.Build, "-")
	cand := strings.Split(o.Build, "-")
	for len(cur) <= patchIndex {
		cur = append(cur, "")
	}
	if len(cur) != len(cand) {
		return false
	}

	for i := range cur {
		if i == patchIndex {
			if !allDigits(cand[i]) {
				return false
			}
			continue
		}
		if cur[i] != cand[i] {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
