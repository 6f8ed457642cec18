package attendance

import (
	"encoding/hex"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config describes one attendance sheet. It is immutable once built by New
// and is owned by the generation pipeline for the duration of one run.
//
// A non-nil Roster selects roster mode (a two-column checklist of the given
// names); otherwise the sheet renders BlankRows blank seat rows grouped into
// 4-seat sign-up tables.
type Config struct {
	ClassName   string
	Teacher     string
	Date        time.Time
	Location    string
	EventID     string
	Roster      []string
	BlankRows   int
	MailingList bool
	MailingRows int
	Logo        image.Image
}

// Option is a functional option for configuring a sheet via New.
type Option func(*Config)

// WithTeacher sets the instructor name shown in the header.
func WithTeacher(name string) Option {
	return func(c *Config) {
		c.Teacher = name
	}
}

// WithDate sets the class date. Only the calendar date is used; any time
// component is ignored.
func WithDate(d time.Time) Option {
	return func(c *Config) {
		c.Date = d
	}
}

// WithLocation sets the optional location line in the header.
func WithLocation(loc string) Option {
	return func(c *Config) {
		c.Location = loc
	}
}

// WithRoster supplies an ordered attendee list and switches the sheet to
// roster mode.
func WithRoster(names []string) Option {
	return func(c *Config) {
		c.Roster = names
	}
}

// WithBlankRows sets how many blank seat rows a blank-mode sheet carries.
// Ignored in roster mode.
func WithBlankRows(n int) Option {
	return func(c *Config) {
		c.BlankRows = n
	}
}

// WithMailingRows sets how many signup line pairs the mailing section holds.
func WithMailingRows(n int) Option {
	return func(c *Config) {
		c.MailingRows = n
	}
}

// WithoutMailingList disables the mailing-list signup section.
func WithoutMailingList() Option {
	return func(c *Config) {
		c.MailingList = false
	}
}

// WithLogo supplies a decoded logo raster for the header's top-right corner.
func WithLogo(img image.Image) Option {
	return func(c *Config) {
		c.Logo = img
	}
}

// WithEventID overrides the generated event identifier. Useful for
// reproducing a sheet byte for byte.
func WithEventID(id string) Option {
	return func(c *Config) {
		c.EventID = id
	}
}

// New builds a validated Config for the named class.
//
// Defaults: teacher "Rick", today's date, 32 blank rows, mailing list
// enabled with 4 rows, a fresh random event identifier.
func New(className string, opts ...Option) (*Config, error) {
	cfg := &Config{
		ClassName:   className,
		Teacher:     "Rick",
		Date:        time.Now(),
		EventID:     NewEventID(),
		BlankRows:   32,
		MailingList: true,
		MailingRows: 4,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.ClassName == "" {
		return nil, fmt.Errorf("%w: class name must not be empty", ErrInvalidParam)
	}
	if cfg.Date.IsZero() {
		return nil, fmt.Errorf("%w: zero value", ErrDate)
	}
	if cfg.Roster == nil && cfg.BlankRows <= 0 {
		return nil, fmt.Errorf("%w: blank rows must be positive, got %d", ErrInvalidParam, cfg.BlankRows)
	}
	if cfg.MailingList && cfg.MailingRows <= 0 {
		return nil, fmt.Errorf("%w: mailing rows must be positive, got %d", ErrInvalidParam, cfg.MailingRows)
	}
	return cfg, nil
}

// NewEventID returns a short opaque event identifier: the first 8 hex digits
// of a random UUID, uppercased.
func NewEventID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:4]))
}
