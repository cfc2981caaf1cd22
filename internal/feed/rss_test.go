package feed

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/natefaubion/haskellweekly/pkg/model"
)

func testChannel() Channel {
	return Channel{
		Title:       "Haskell Weekly",
		Link:        "https://haskellweekly.example/",
		Description: "Short conversations about the Haskell programming language.",
		Language:    "en-US",
	}
}

func testEpisode(n int) model.Episode {
	return model.Episode{
		Number:     n,
		Title:      "Some episode",
		Date:       time.Date(2019, 3, 11, 0, 0, 0, 0, time.UTC),
		GUID:       uuid.MustParse("6fbb2a74-bea1-4c17-8eb2-0dd030fda62e"),
		AudioURL:   "https://haskellweekly.example/episodes/1.mp3",
		AudioBytes: 13999897,
		Duration:   581,
	}
}

func TestBuild(t *testing.T) {
	out, err := Build(testChannel(), []model.Episode{testEpisode(2), testEpisode(1)})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	s := string(out)

	// le document doit rester du XML bien formé
	var doc rss
	if err := xml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not well-formed XML: %v", err)
	}
	if len(doc.Channel.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(doc.Channel.Items))
	}

	for _, want := range []string{
		`version="2.0"`,
		"<title>Haskell Weekly</title>",
		"<language>en-US</language>",
		`isPermaLink="false"`,
		"6fbb2a74-bea1-4c17-8eb2-0dd030fda62e",
		`type="audio/mpeg"`,
		`length="13999897"`,
		"https://haskellweekly.example/episode-2.html",
		"Mon, 11 Mar 2019 00:00:00 +0000",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("feed does not contain %q", want)
		}
	}
}

func TestBuild_EmptyTitle(t *testing.T) {
	ch := testChannel()
	ch.Title = "  "
	if _, err := Build(ch, nil); err == nil {
		t.Fatal("Build() with empty channel title should fail")
	}
}

func TestPageURL_TrailingSlash(t *testing.T) {
	e := testEpisode(7)
	withSlash := pageURL("https://x.test/", e)
	withoutSlash := pageURL("https://x.test", e)
	if withSlash != withoutSlash {
		t.Errorf("pageURL is not slash-insensitive: %q != %q", withSlash, withoutSlash)
	}
	if withSlash != "https://x.test/episode-7.html" {
		t.Errorf("pageURL = %q", withSlash)
	}
}
