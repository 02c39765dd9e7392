// Package station defines the radio station entity the menu actions operate on.
package station

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrMissingUUID indicates a station without an identifier.
	ErrMissingUUID = errors.New("station uuid is required")
	// ErrInvalidUUID is returned for ids containing path separators or "..".
	ErrInvalidUUID = errors.New("station uuid must not contain path elements")
	// ErrMissingName indicates a station without a display name.
	ErrMissingName = errors.New("station name is required")
	// ErrInvalidStreamURL indicates a stream URL that is empty or not http(s).
	ErrInvalidStreamURL = errors.New("station stream url must be an http(s) url")
)

// Station is a single radio station as stored in favorites.
type Station struct {
	UUID        string `yaml:"uuid" toml:"uuid"`
	Name        string `yaml:"name" toml:"name"`
	StreamURL   string `yaml:"url" toml:"url"`
	Homepage    string `yaml:"homepage,omitempty" toml:"homepage"`
	Favicon     string `yaml:"favicon,omitempty" toml:"favicon"`
	Country     string `yaml:"country,omitempty" toml:"country"`
	CountryCode string `yaml:"countrycode,omitempty" toml:"countrycode"`
	State       string `yaml:"state,omitempty" toml:"state"`
	// Tags is the comma separated tag string as delivered by the station directory.
	Tags        string `yaml:"tags,omitempty" toml:"tags"`
	Language    string `yaml:"language,omitempty" toml:"language"`
	Codec       string `yaml:"codec,omitempty" toml:"codec"`
	Bitrate     int    `yaml:"bitrate,omitempty" toml:"bitrate"`
	HLS         bool   `yaml:"hls,omitempty" toml:"hls"`
	LastCheckOK bool   `yaml:"lastcheckok,omitempty" toml:"lastcheckok"`
}

// New returns a station with a freshly generated UUID.
func New(name, streamURL string) *Station {
	return &Station{
		UUID:        uuid.NewString(),
		Name:        strings.TrimSpace(name),
		StreamURL:   strings.TrimSpace(streamURL),
		LastCheckOK: true,
	}
}

// Validate checks the fields every action relies on.
func (s *Station) Validate() error {
	if s == nil {
		return fmt.Errorf("station: nil station")
	}
	if strings.TrimSpace(s.UUID) == "" {
		return ErrMissingUUID
	}
	if strings.ContainsAny(s.UUID, `/\`) || strings.Contains(s.UUID, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidUUID, s.UUID)
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingName
	}
	if !isHTTPURL(s.StreamURL) {
		return fmt.Errorf("%w: %q", ErrInvalidStreamURL, s.StreamURL)
	}
	return nil
}

// TagList splits Tags into trimmed, non-empty tags.
func (s *Station) TagList() []string {
	if s.Tags == "" {
		return nil
	}
	parts := strings.Split(s.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ShareText is the text handed to the share target: the name followed by the
// homepage, or the stream URL when the station has no homepage.
func (s *Station) ShareText() string {
	link := s.Homepage
	if strings.TrimSpace(link) == "" {
		link = s.StreamURL
	}
	return s.Name + " " + link
}

// ShortcutName returns a file-system safe name used for launcher entries:
// only [a-z0-9-], from the name and the first eight usable uuid characters.
func (s *Station) ShortcutName() string {
	name := slug(s.Name)
	if name == "" {
		name = "station"
	}
	short := slug(s.UUID)
	if len(short) > 8 {
		short = strings.TrimRight(short[:8], "-")
	}
	if short == "" {
		return name
	}
	return name + "-" + short
}

func slug(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
