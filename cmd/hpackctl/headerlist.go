package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yourusername/hpackenc/pkg/hpack"
)

// parseHeaderList reads one header per line in "name: value" form. A line
// starting with "!" marks the header's value sensitive (e.g.
// "!authorization: Bearer xyz"). Blank lines are skipped.
func parseHeaderList(r io.Reader) ([]hpack.Header, error) {
	var headers []hpack.Header

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sensitive := false
		if strings.HasPrefix(line, "!") {
			sensitive = true
			line = line[1:]
		}

		// A leading ':' belongs to a pseudo-header name (":method"), so the
		// separator search starts after it.
		skip := 0
		if strings.HasPrefix(line, ":") {
			skip = 1
		}
		name, value, ok := strings.Cut(line[skip:], ":")
		if !ok {
			return nil, fmt.Errorf("malformed header line %q: expected \"name: value\"", line)
		}
		name = strings.TrimSpace(line[:skip] + name)
		value = strings.TrimSpace(value)

		if sensitive {
			headers = append(headers, hpack.SensitiveField(name, value))
		} else {
			headers = append(headers, hpack.Field(name, value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return headers, nil
}

func formatHeaderList(w io.Writer, headers []hpack.Header) {
	for _, h := range headers {
		prefix := ""
		if h.Value.Sensitive {
			prefix = "!"
		}
		fmt.Fprintf(w, "%s%s: %s\n", prefix, h.Name, h.Value.S)
	}
}
