package urlsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrSourceNotFound is returned when the URL file does not exist.
var ErrSourceNotFound = errors.New("url file not found")

// Load reads URLs from the file at path. See Parse for the line rules.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	if err != nil {
		return nil, fmt.Errorf("open url file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	urls, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("read url file %s: %w", path, err)
	}

	return urls, nil
}

// Parse returns the trimmed lines of r in order, skipping blank lines and
// lines starting with '#'. Values are not validated as URLs.
func Parse(r io.Reader) ([]string, error) {
	urls := []string{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		urls = append(urls, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}
