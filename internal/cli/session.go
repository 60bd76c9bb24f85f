package cli

import (
	"fmt"
	"os"
	"strings"
)

// LoadSession returns the account ID stored in the session file, or an
// empty string when no session exists.
func LoadSession(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveSession stores the account ID, readable by the owner only.
func SaveSession(path, accountID string) error {
	if err := os.WriteFile(path, []byte(accountID+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearSession removes the session file. A missing file is fine.
func ClearSession(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
