package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirm prompts on stdin. An empty answer or a read error falls back to
// the default.
func Confirm(message string, defaultYes bool) bool {
	if defaultYes {
		fmt.Printf("%s (Y/n): ", message)
	} else {
		fmt.Printf("%s (y/N): ", message)
	}

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return defaultYes
	}
	return response == "y" || response == "yes"
}
