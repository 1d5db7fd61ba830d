package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"tailscale.com/util/deephash"
)

// loadInput returns the real input for a day: the -input file (or standard
// input for "-"), else the cached copy in <year>/<day>.input, else a fresh
// download which is then cached.
func loadInput(year, day int) ([]byte, error) {
	switch opts.input {
	case "":
		return cachedInput(
			fmt.Sprintf("%d/%d.input", year, day),
			fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day),
		)
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(opts.input)
	}
}

var printer = message.NewPrinter(language.English)

// describeInput summarizes b for debug output.
func describeInput(b []byte) string {
	sum := deephash.Hash(&b)
	return printer.Sprintf("%d bytes, %d lines, hash %v", len(b), strings.Count(string(b), "\n"), sum)
}

// cachedInput returns the contents of path, first downloading url into it if
// the file doesn't exist yet.
func cachedInput(path, url string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return b, err
	}
	if b, err = download(url); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return b, os.WriteFile(path, b, 0o644)
}

// sessionToken returns the adventofcode.com session cookie from $AOC_SESSION
// or ~/keys/aoc.session.
func sessionToken() (string, error) {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return strings.TrimSpace(s), nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("no session: set AOC_SESSION or write ~/keys/aoc.session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

var client = &http.Client{Timeout: 30 * time.Second}

func download(url string) ([]byte, error) {
	token, err := sessionToken()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: token})
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
