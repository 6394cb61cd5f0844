package view

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leg100/hub/internal/resource"
)

// Server is a chat server to connect to.
type Server struct {
	ID   resource.ID
	Name string
	URL  *url.URL
}

// ParseServer parses a server from a string of the form name=url, or just a
// url, in which case the url's host is used for the name.
func ParseServer(s string) (Server, error) {
	name, rawURL, found := strings.Cut(s, "=")
	if !found {
		rawURL = s
		name = ""
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Server{}, fmt.Errorf("parsing server url: %w", err)
	}
	if u.Host == "" {
		return Server{}, fmt.Errorf("server url must include a host: %s", rawURL)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = u.Host
	}
	return Server{
		ID:   resource.NewID(resource.Server),
		Name: name,
		URL:  u,
	}, nil
}

// Icon is a single glyph identifying the server.
func (s Server) Icon() string {
	r, _ := utf8.DecodeRuneInString(s.Name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

func (s Server) String() string { return s.Name }
