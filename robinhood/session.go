// Package robinhood dumps the user's brokerage watchlists.
//
// There is no OAuth dance here: the user logs in once in a browser and
// pastes the request headers of an authenticated call through the
// 'rh-login' command. The headers are kept in a temp file and replayed
// on every API call, the same session-file flow used for every
// authenticated provider of this toolkit.
package robinhood

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const sessionFile = "scs-robinhood-session"

// SessionPath returns the file where the session headers are stored.
func SessionPath() string { return filepath.Join(os.TempDir(), sessionFile) }

// LoadHeaders reads the stored session headers.
func LoadHeaders() (http.Header, error) {
	headerData, err := os.ReadFile(SessionPath())
	if err != nil {
		return nil, fmt.Errorf("robinhood session not found. Please run 'scs rh-login' first: %w", err)
	}

	headers := make(http.Header)
	scanner := bufio.NewScanner(strings.NewReader(string(headerData)))
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			headers.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	}
	return headers, nil
}

// SaveHeaders stores the session headers for later API calls.
func SaveHeaders(headers []string) error {
	if err := os.WriteFile(SessionPath(), []byte(strings.Join(headers, "\n")), 0600); err != nil {
		return fmt.Errorf("cannot save robinhood session: %w", err)
	}
	return nil
}
