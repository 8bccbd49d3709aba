package main

import (
	"fmt"
	"os"
)

// sqlArg resolves a command's positional argument to SQL text: if it
// names an existing file, the file's contents are used; otherwise the
// argument itself is treated as literal SQL.
func sqlArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("expected a SQL string or file path argument")
	}
	if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return args[0], nil
}
