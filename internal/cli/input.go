package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func getSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// getPassword reads a password without echoing it.
func getPassword() ([]byte, error) {
	fmt.Println("-Enter password")
	defer fmt.Println()
	return term.ReadPassword(int(os.Stdin.Fd()))
}
