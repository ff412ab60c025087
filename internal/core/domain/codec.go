package domain

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Wire keys of the line-oriented helper protocol.
const (
	KeyProtocol = "protocol"
	KeyHost     = "host"
	KeyPath     = "path"
	KeyUsername = "username"
	KeyPassword = "password"
	KeyURL      = "url"
	KeyQuit     = "quit"
)

// ParseContext decodes a helper reply of "key=value" lines.
// Unknown keys are ignored and an empty line ends the record.
func ParseContext(data []byte) (*Context, error) {
	return DecodeContext(bytes.NewReader(data))
}

// DecodeContext reads a "key=value" record from r.
func DecodeContext(r io.Reader) (*Context, error) {
	ctx := &Context{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			break
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no '=' separator", ErrInvalidInput, line)
		}
		if strings.ContainsRune(value, 0) {
			return nil, fmt.Errorf("%w: line %d contains a NUL byte", ErrInvalidInput, line)
		}
		switch key {
		case KeyProtocol:
			ctx.Protocol = String(value)
		case KeyHost:
			ctx.Host = String(value)
		case KeyPath:
			ctx.Path = String(value)
		case KeyUsername:
			ctx.Username = String(value)
		case KeyPassword:
			ctx.Password = String(value)
		case KeyURL:
			ctx.URL = String(value)
		case KeyQuit:
			ctx.Quit = Bool(parseBool(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading credential record: %w", err)
	}
	return ctx, nil
}

// Encode writes c as "key=value" lines terminated by an empty line.
func (c *Context) Encode(w io.Writer) error {
	var b strings.Builder
	for _, f := range []struct {
		key   string
		value *string
	}{
		{KeyProtocol, c.Protocol},
		{KeyHost, c.Host},
		{KeyPath, c.Path},
		{KeyUsername, c.Username},
		{KeyPassword, c.Password},
		{KeyURL, c.URL},
	} {
		if f.value == nil {
			continue
		}
		if strings.ContainsAny(*f.value, "\n\x00") {
			return fmt.Errorf("%w: %s contains a newline or NUL byte", ErrInvalidInput, f.key)
		}
		fmt.Fprintf(&b, "%s=%s\n", f.key, *f.value)
	}
	if c.ShouldQuit() {
		fmt.Fprintf(&b, "%s=1\n", KeyQuit)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// Bytes returns the wire encoding of c.
func (c *Context) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
