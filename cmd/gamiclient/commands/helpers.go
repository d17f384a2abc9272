package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"gamiclient/internal/protocol/envelope"
	"gamiclient/internal/util/memzero"
)

// readSecret prompts for a secret without echo when stdin is a terminal.
func readSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		defer memzero.Zero(b)
		return string(b), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// sessionPassphrase returns the configured passphrase or prompts for one.
func sessionPassphrase() (string, error) {
	if cfg.Passphrase != "" {
		return cfg.Passphrase, nil
	}
	p, err := readSecret("Session passphrase: ")
	if err != nil {
		return "", err
	}
	if p == "" {
		return "", fmt.Errorf("passphrase required (-p)")
	}
	cfg.Passphrase = p
	return p, nil
}

// resume loads the stored session into appCtx.
func resume() error {
	p, err := sessionPassphrase()
	if err != nil {
		return err
	}
	ok, err := appCtx.Resume(p)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return fmt.Errorf("no stored session. run gamiclient login first")
	}
	return nil
}

// envError turns an ERROR envelope into a command error.
func envError(status envelope.Status, msg string) error {
	if status == envelope.StatusSuccess {
		return nil
	}
	return fmt.Errorf("platform: %s", msg)
}

// printJSON writes v to stdout when --json is set and reports whether it did.
func printJSON(v any) (bool, error) {
	if !jsonOutput {
		return false, nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return true, enc.Encode(v)
}
