package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/openclaw-cn/claw/cmd/claw/cmd"
	"github.com/openclaw-cn/claw/internal/api"
	clawerrors "github.com/openclaw-cn/claw/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	var apiErr *api.APIError
	if clawerrors.Code(err) == "" && errors.As(err, &apiErr) {
		// Already reads "Error <status>: <message>".
		fmt.Fprintln(os.Stderr, apiErr.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", clawerrors.Message(err))
	if usage := clawerrors.Usage(err); usage != "" {
		fmt.Fprintln(os.Stderr, usage)
	}
}
