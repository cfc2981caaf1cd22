package site

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"

	"github.com/natefaubion/haskellweekly/internal/feed"
	"github.com/natefaubion/haskellweekly/pkg/model"
)

func testChannel() feed.Channel {
	return feed.Channel{
		Title:       "Haskell Weekly",
		Link:        "https://haskellweekly.example",
		Description: "Short conversations about Haskell.",
		Language:    "en-US",
	}
}

func testEpisode() model.Episode {
	return model.Episode{
		Number:     3,
		Title:      "Frontend <languages>",
		Date:       time.Date(2019, 3, 25, 0, 0, 0, 0, time.UTC),
		GUID:       uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
		AudioURL:   "https://haskellweekly.example/episodes/3.mp3",
		AudioBytes: 1000,
		Duration:   720,
		Captions:   "episode-3.vtt",
	}
}

func TestDefaultRenderer_EmbeddedTemplates(t *testing.T) {
	r, err := DefaultRenderer()
	if err != nil {
		t.Fatalf("DefaultRenderer() error = %v", err)
	}

	out, err := r.Index(IndexData{Channel: testChannel(), Episodes: []model.Episode{testEpisode()}})
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	html := string(out)
	for _, want := range []string{"Haskell Weekly", "episode-3.html", "00:12:00"} {
		if !strings.Contains(html, want) {
			t.Errorf("index page does not contain %q", want)
		}
	}
}

func TestRenderer_EpisodePage(t *testing.T) {
	r, err := DefaultRenderer()
	if err != nil {
		t.Fatalf("DefaultRenderer() error = %v", err)
	}

	out, err := r.Episode(EpisodeData{
		Channel: testChannel(),
		Episode: testEpisode(),
		Lines: []string{
			">> Hello & welcome.",
			">> Thanks for having me.",
		},
	})
	if err != nil {
		t.Fatalf("Episode() error = %v", err)
	}
	html := string(out)

	// html/template doit échapper le contenu
	if !strings.Contains(html, "Frontend &lt;languages&gt;") {
		t.Errorf("episode title is not escaped: %s", html)
	}
	if !strings.Contains(html, "&gt;&gt; Thanks for having me.") {
		t.Errorf("transcript lines are not escaped: %s", html)
	}
	if strings.Contains(html, "No transcript available") {
		t.Error("page should not show the missing-transcript notice")
	}
}

func TestRenderer_EpisodePageWithoutTranscript(t *testing.T) {
	r, err := DefaultRenderer()
	if err != nil {
		t.Fatalf("DefaultRenderer() error = %v", err)
	}
	out, err := r.Episode(EpisodeData{Channel: testChannel(), Episode: testEpisode()})
	if err != nil {
		t.Fatalf("Episode() error = %v", err)
	}
	if !strings.Contains(string(out), "No transcript available") {
		t.Error("page should mention the missing transcript")
	}
}

func TestRenderer_LazyParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.html.tmpl": {Data: []byte("{{ .Oops")},
	}
	r, err := NewRendererFromFS(fsys, []string{"broken.html.tmpl"})
	if err != nil {
		t.Fatalf("NewRendererFromFS() error = %v", err)
	}
	if err := r.ParseNow(); err == nil {
		t.Fatal("ParseNow() should fail on a broken template")
	}
	// l'erreur doit être mémorisée par le sync.Once
	if _, err := r.Index(IndexData{}); err == nil {
		t.Fatal("Index() should keep returning the parse error")
	}
}

func TestNewRendererFromFS_Validation(t *testing.T) {
	if _, err := NewRendererFromFS(nil, []string{"x"}); err == nil {
		t.Error("nil fsys should be rejected")
	}
	if _, err := NewRendererFromFS(fstest.MapFS{}, nil); err == nil {
		t.Error("empty patterns should be rejected")
	}
}
