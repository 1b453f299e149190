package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"

	"github.com/greut/imgurl/imgurl"
)

// transformFlags carries the transformation flags as given on the command
// line. An empty string means the flag was left unset: 0 is a valid width
// and a valid quality, so it cannot double as the sentinel.
type transformFlags struct {
	width       string
	height      string
	format      string
	quality     string
	progressive bool
	fit         string
	focus       string
	background  string
	radius      string
}

// makeQuery translates the flags into front-end query parameters, skipping
// the unset ones.
func makeQuery(f transformFlags) url.Values {
	query := url.Values{}

	if f.width != "" {
		query.Set("w", f.width)
	}
	if f.height != "" {
		query.Set("h", f.height)
	}
	if f.format != "" {
		query.Set("fm", f.format)
	}
	if f.quality != "" {
		query.Set("q", f.quality)
	}
	if f.progressive {
		query.Set("fl", "progressive")
	}
	if f.fit != "" {
		query.Set("fit", f.fit)
	}
	if f.focus != "" {
		query.Set("f", f.focus)
	}
	if f.background != "" {
		query.Set("bg", f.background)
	}
	if f.radius != "" {
		query.Set("r", f.radius)
	}

	return query
}

func main() {
	var base = flag.String("base", "", "Define the base asset URL to decorate.")
	var f transformFlags
	flag.StringVar(&f.width, "width", "", "Resize width, in pixels.")
	flag.StringVar(&f.height, "height", "", "Resize height, in pixels.")
	flag.StringVar(&f.format, "format", "", "Output format: jpg, png or webp.")
	flag.StringVar(&f.quality, "quality", "", "JPG quality, in percents.")
	flag.BoolVar(&f.progressive, "progressive", false, "Ask for a progressive JPG.")
	flag.StringVar(&f.fit, "fit", "", "Fit mode: pad, crop, fill, thumb or scale.")
	flag.StringVar(&f.focus, "focus", "", "Focus area for crop, fill and thumb.")
	flag.StringVar(&f.background, "bg", "", "Background color for pad, as RRGGBB.")
	flag.StringVar(&f.radius, "radius", "", "Corner radius, in pixels.")
	flag.Parse()

	if flag.NArg() > 0 {
		*base = flag.Arg(0)
	}
	if *base == "" {
		flag.Usage()
		return
	}

	options, err := imgurl.ParseOptions(makeQuery(f))
	if err != nil {
		log.Fatal(err)
	}

	built, err := imgurl.BuildRawURL(*base, options...)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(built)
}
