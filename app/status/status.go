// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package status maps check outcomes onto the Nagios plugin
// convention: exit codes 0/1/2/3 for OK/WARNING/CRITICAL/UNKNOWN and a
// single status line on stdout.
package status

import (
	"fmt"

	"github.com/joshwilliams/check-digital-ocean-kernel/app/domain/kernel"
)

// prefix identifies this plugin in monitoring system output.
const prefix = "DO KERNEL"

type State int

const (
	StateOK State = iota
	StateWarning
	StateCritical
	StateUnknown
)

func (s State) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarning:
		return "WARNING"
	case StateCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code the monitoring system expects.
func (s State) ExitCode() int {
	return int(s)
}

// Report is the verdict of one invocation.
type Report struct {
	State   State
	Message string
}

// Render returns the status line emitted on stdout.
func (r Report) Render() string {
	return fmt.Sprintf("%s %s: %s", prefix, r.State, r.Message)
}

// Unknownf builds an UNKNOWN report, used for transport failures,
// unknown hostnames and anything else that prevents a verdict.
func Unknownf(format string, args ...interface{}) Report {
	return Report{State: StateUnknown, Message: fmt.Sprintf(format, args...)}
}

// FromSelection maps a selector outcome to a report. An empty
// comparable set yields UNKNOWN regardless of the critical flag. On a
// mismatch the message names both kernels so an operator can act
// without consulting raw data.
func FromSelection(sel kernel.Selection, critical bool) Report {
	switch {
	case sel.Newest == nil:
		return Unknownf("no kernels comparable to %q offered for this droplet", sel.Current.Name)
	case sel.UpToDate():
		return Report{
			State:   StateOK,
			Message: fmt.Sprintf("configured kernel %q is the newest available", sel.Current.Name),
		}
	default:
		state := StateWarning
		if critical {
			state = StateCritical
		}
		return Report{
			State:   state,
			Message: fmt.Sprintf("configured kernel %q is outdated, newest available is %q", sel.Current.Name, sel.Newest.Name),
		}
	}
}
