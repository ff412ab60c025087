// Package giturl implements driven.URLParser on top of go-git's endpoint
// parser, so scp-like addresses ("git@host:org/repo.git") and local paths
// are understood the same way git understands them.
package giturl

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.URLParser = Parser{}

// defaultPorts are left out of the host, as git omits them as well.
var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"ssh":   22,
	"git":   9418,
}

// ErrNotURL is returned for input that is neither a URL with a scheme nor
// an scp-like address. go-git would read it as a local path relative to the
// working directory.
var ErrNotURL = errors.New("not a URL or scp-like address")

// Parser splits credential URLs into protocol, host and path.
type Parser struct{}

// NewParser creates a URL parser.
func NewParser() Parser {
	return Parser{}
}

// Parse splits rawURL. The host carries ":port" for non-default ports.
func (Parser) Parse(rawURL string) (domain.URLParts, error) {
	ep, err := transport.NewEndpoint(rawURL)
	if err != nil {
		// url.Error quotes the raw URL, which may embed a password.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return domain.URLParts{}, uerr.Err
		}
		return domain.URLParts{}, err
	}

	if ep.Protocol == "file" && !strings.HasPrefix(strings.ToLower(rawURL), "file://") {
		return domain.URLParts{}, fmt.Errorf("%w: missing scheme", ErrNotURL)
	}

	host := ep.Host
	if ep.Port != 0 && defaultPorts[ep.Protocol] != ep.Port {
		host += ":" + strconv.Itoa(ep.Port)
	}
	return domain.URLParts{
		Protocol: ep.Protocol,
		Username: ep.User,
		Host:     host,
		Path:     ep.Path,
	}, nil
}
