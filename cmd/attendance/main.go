// Command attendance generates printable attendance sheet PDFs.
//
// # Installation
//
//	go install github.com/lvillar/attendance/cmd/attendance@latest
//
// # Usage
//
//	attendance -name "Beginning Bridge"
//	attendance -name "Beginning Bridge" -date 2025-03-01 -location "Community Center"
//	attendance -name "Beginning Bridge" -roster students.json -logo https://example.com/club.png
//
// With no roster the sheet renders blank 4-seat sign-up tables (-rows seats
// in total, paginated); with -roster it renders a two-column checklist of
// the listed names. The roster file is a JSON array of objects with a
// "name" field.
//
// The output path defaults to attendance-<date>.pdf. The process exits
// non-zero on any configuration, load or generation error.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lvillar/attendance"
	"github.com/lvillar/attendance/logo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "attendance: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		name          = flag.String("name", "", "class/event name (required)")
		teacher       = flag.String("teacher", "Rick", "teacher name")
		date          = flag.String("date", "", "class date as YYYY-MM-DD (default: today)")
		location      = flag.String("location", "", "class location")
		rows          = flag.Int("rows", 32, "number of blank seat rows")
		noMailingList = flag.Bool("no-mailing-list", false, "disable the mailing list signup section")
		mailingRows   = flag.Int("mailing-rows", 4, "number of mailing list signup rows")
		output        = flag.String("output", "", "output filename (default: attendance-<date>.pdf)")
		rosterPath    = flag.String("roster", "", "student roster file (JSON array of names)")
		logoRef       = flag.String("logo", "", "logo image (file path or URL) for the header")
	)
	flag.Parse()

	if *name == "" {
		flag.Usage()
		return fmt.Errorf("%w: -name is required", attendance.ErrInvalidParam)
	}

	opts := []attendance.Option{
		attendance.WithTeacher(*teacher),
		attendance.WithLocation(*location),
		attendance.WithBlankRows(*rows),
		attendance.WithMailingRows(*mailingRows),
	}
	if *noMailingList {
		opts = append(opts, attendance.WithoutMailingList())
	}

	if *date != "" {
		d, err := time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("%w: %q (want YYYY-MM-DD)", attendance.ErrDate, *date)
		}
		opts = append(opts, attendance.WithDate(d))
	}

	if *rosterPath != "" {
		names, err := attendance.LoadRoster(*rosterPath)
		if err != nil {
			return err
		}
		opts = append(opts, attendance.WithRoster(names))
	}

	if *logoRef != "" {
		img, err := logo.Load(*logoRef)
		if err != nil {
			return fmt.Errorf("%w: %v", attendance.ErrLogo, err)
		}
		opts = append(opts, attendance.WithLogo(img))
	}

	cfg, err := attendance.New(*name, opts...)
	if err != nil {
		return err
	}

	out := *output
	if out == "" {
		out = attendance.DefaultFilename(cfg)
	}

	if err := attendance.WriteFile(cfg, out); err != nil {
		return err
	}

	fmt.Printf("Generated: %s\n", out)
	fmt.Printf("  Class: %s\n", cfg.ClassName)
	fmt.Printf("  Date: %s\n", attendance.FormatDate(cfg.Date))
	fmt.Printf("  Event ID: %s\n", cfg.EventID)
	return nil
}
