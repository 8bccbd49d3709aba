package main

import "errors"

// errParseFailed marks a command failure caused by a SQL parse error,
// as opposed to a usage error from cobra's own argument/flag handling.
// main distinguishes the two to pick the right process exit code.
var errParseFailed = errors.New("parse failed")

// exitCode maps a RunE error to a process exit code: 0 on success
// (never reached here), 1 for generic argument/usage errors, 2 when the
// failure is a SQL parse error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errParseFailed) {
		return 2
	}
	return 1
}
