package imgurl

import (
	"log"
	"net/url"
	"testing"
)

func TestBuildURLWithoutOptions(t *testing.T) {
	base, err := url.Parse("https://img.example.com/asset.jpg?fm=png")
	if err != nil {
		log.Fatal(err)
	}

	built, err := BuildURL(base)
	if err != nil {
		t.Errorf("no options should build: got %v", err)
	}

	if built != base {
		t.Errorf("no options should return the base URL untouched: got %v want %v", built, base)
	}
}

func TestBuildURL(t *testing.T) {
	var tests = []struct {
		base    string
		options []Option
		url     string
	}{
		{
			"https://img.example.com/asset.jpg",
			[]Option{SizeTo{100, 200}, FormatAs{PNG{}}},
			"https://img.example.com/asset.jpg?w=100&h=200&fm=png",
		},
		{
			"https://img.example.com/asset.jpg",
			[]Option{FormatAs{JPG{QualityPercent(50)}}},
			"https://img.example.com/asset.jpg?fm=jpg&q=50",
		},
		{
			"https://img.example.com/asset.jpg",
			[]Option{FitFor{Thumb{Focus: FocusTopLeft}}, SizeTo{64, 64}},
			"https://img.example.com/asset.jpg?fit=thumb&f=top_left&w=64&h=64",
		},
		{
			"https://img.example.com/asset.jpg",
			[]Option{CornerRadius{2.5}, FormatAs{JPG{Progressive{}}}},
			"https://img.example.com/asset.jpg?r=2.5&fm=jpg&fl=progressive",
		},
		// the pre-existing query is replaced, not merged.
		{
			"https://img.example.com/asset.jpg?w=9999&token=abc",
			[]Option{SizeTo{100, 200}},
			"https://img.example.com/asset.jpg?w=100&h=200",
		},
	}

	for _, test := range tests {
		built, err := BuildRawURL(test.base, test.options...)
		if err != nil {
			t.Errorf("%v should build: got %v", test.options, err)
			continue
		}
		if built != test.url {
			t.Errorf("wrong URL for %v: got %#v want %#v", test.options, built, test.url)
		}
	}
}

func TestBuildURLInvalidParameters(t *testing.T) {
	var tests = []struct {
		options []Option
	}{
		{[]Option{SizeTo{100, 200}, SizeTo{50, 50}}},
		{[]Option{FormatAs{PNG{}}, FormatAs{PNG{}}}},
		{[]Option{SizeTo{0, 100}}},
		{[]Option{SizeTo{4001, 100}}},
		{[]Option{FormatAs{JPG{QualityPercent(101)}}}},
	}

	base, err := url.Parse("https://img.example.com/asset.jpg")
	if err != nil {
		log.Fatal(err)
	}

	for _, test := range tests {
		built, err := BuildURL(base, test.options...)
		if built != nil {
			t.Errorf("%v should not return a partial URL: got %v", test.options, built)
		}
		if _, ok := err.(InvalidParametersError); !ok {
			t.Errorf("%v should be refused: got %v", test.options, err)
		}
	}
}

func TestBuildURLInvalidBase(t *testing.T) {
	// The string form of this URL does not survive a re-parse.
	base := &url.URL{Scheme: "https", Host: "img.exa mple.com", Path: "/asset.jpg"}

	_, err := BuildURL(base, SizeTo{100, 200})
	if _, ok := err.(InvalidURLError); !ok {
		t.Errorf("a base URL that cannot be re-parsed should be refused: got %v", err)
	}

	_, err = BuildRawURL("https://img.exa mple.com/asset.jpg", SizeTo{100, 200})
	if _, ok := err.(InvalidURLError); !ok {
		t.Errorf("a raw base URL that cannot be parsed should be refused: got %v", err)
	}
}

func TestBuildURLEscapesValues(t *testing.T) {
	built, err := BuildRawURL("https://img.example.com/asset.jpg", CornerRadius{0.5})
	if err != nil {
		t.Errorf("the radius should build: got %v", err)
	}

	if built != "https://img.example.com/asset.jpg?r=0.5" {
		t.Errorf("wrong URL: got %#v", built)
	}
}
