// Package sched runs a benchmark binary as several concurrent processes
// under different Linux scheduling policies and records how long each
// copy took.
package sched

import (
	"fmt"
	"strconv"
	"strings"
)

// Policy names a scheduling class and the command prefix that places a
// process in it.
type Policy struct {
	Name   string
	Prefix []string
}

// DefaultPolicies is the order policies run in when none are named.
var DefaultPolicies = []string{"cfs", "rr", "fifo"}

// Policies resolves names to policies. Real-time classes are entered with
// chrt at priority, behind sudo when asked.
func Policies(names []string, priority int, sudo bool) ([]Policy, error) {
	if priority < 1 || priority > 99 {
		return nil, fmt.Errorf("sched: real-time priority %d outside [1,99]", priority)
	}

	chrt := func(flag string) []string {
		prefix := []string{"chrt", flag, strconv.Itoa(priority)}
		if sudo {
			prefix = append([]string{"sudo"}, prefix...)
		}
		return prefix
	}

	policies := make([]Policy, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(name) {
		case "cfs", "other":
			policies = append(policies, Policy{Name: "CFS"})
		case "rr":
			policies = append(policies, Policy{Name: "RR", Prefix: chrt("-r")})
		case "fifo":
			policies = append(policies, Policy{Name: "FIFO", Prefix: chrt("-f")})
		default:
			return nil, fmt.Errorf("sched: unknown policy %q", name)
		}
	}

	return policies, nil
}
