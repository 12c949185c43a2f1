package main

import (
	"fmt"
	"os"

	clierrors "beautty/internal/errors"
	"beautty/internal/logging"
)

func main() {
	err := Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "beautty:", err)
		os.Exit(clierrors.ExitCode(err))
	}
}
