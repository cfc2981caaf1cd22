package transcript

import (
	"reflect"
	"testing"

	"github.com/natefaubion/haskellweekly/internal/vtt"
)

// mustCaptions construit des cues factices à partir de payloads bruts ; les
// timestamps n'ont aucune influence sur le rendu.
func mustCaptions(t *testing.T, payloads ...[]string) []vtt.Caption {
	t.Helper()
	captions := make([]vtt.Caption, 0, len(payloads))
	for i, lines := range payloads {
		p, err := vtt.NewPayload(lines)
		if err != nil {
			t.Fatalf("NewPayload(%#v): %v", lines, err)
		}
		captions = append(captions, vtt.Caption{
			ID:      uint64(i + 1),
			Start:   vtt.Timestamp(uint64(i) * 2000),
			End:     vtt.Timestamp(uint64(i+1) * 2000),
			Payload: p,
		})
	}
	return captions
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		payloads [][]string
		want     []string
	}{
		{
			name:     "marker line then text line",
			payloads: [][]string{{">>", "Hello, world!"}},
			want:     []string{">> Hello, world!"},
		},
		{
			name:     "consecutive captions without marker merge",
			payloads: [][]string{{"Hello"}, {"world!"}},
			want:     []string{"Hello world!"},
		},
		{
			name:     "leading words before first marker are dropped",
			payloads: [][]string{{"picking up", "mid sentence"}, {">> Welcome back."}},
			want:     []string{">> Welcome back."},
		},
		{
			name: "two speakers across caption boundaries",
			payloads: [][]string{
				{">> So what is", "a monad?"},
				{"Anyway."},
				{">> A monoid in the", "category of endofunctors."},
			},
			want: []string{
				">> So what is a monad? Anyway.",
				">> A monoid in the category of endofunctors.",
			},
		},
		{
			name:     "marker glued to a word is not a marker",
			payloads: [][]string{{">> Hello", ">>world"}},
			want:     []string{">> Hello >>world"},
		},
		{
			name:     "consecutive markers",
			payloads: [][]string{{">>", ">>", "Hi"}},
			want:     []string{">>", ">> Hi"},
		},
		{
			name:     "original line wrapping is discarded",
			payloads: [][]string{{">> one   two\t", " three"}},
			want:     []string{">> one two three"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Render(mustCaptions(t, tc.payloads...))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Render() = %#v; want %#v", got, tc.want)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(nil); len(got) != 0 {
		t.Errorf("Render(nil) = %#v; want empty", got)
	}
	if got := Render([]vtt.Caption{}); len(got) != 0 {
		t.Errorf("Render([]) = %#v; want empty", got)
	}
}

// Le pipeline complet parse -> render doit être référentiellement transparent.
func TestRender_PipelineDeterministic(t *testing.T) {
	doc := "WEBVTT\n\n" +
		"1\n00:00:00.000 --> 00:00:02.000\n>>\nHello, world!\n" +
		"\n" +
		"2\n00:00:02.000 --> 00:00:05.000\nstill the same speaker\n" +
		"\n" +
		"3\n00:00:05.000 --> 00:00:09.000\n>> And now someone else.\n"

	run := func() []string {
		captions, err := vtt.Parse(doc)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		return Render(captions)
	}

	want := []string{
		">> Hello, world! still the same speaker",
		">> And now someone else.",
	}
	first := run()
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("pipeline output = %#v; want %#v", first, want)
	}
	if second := run(); !reflect.DeepEqual(first, second) {
		t.Errorf("pipeline is not deterministic: %#v != %#v", first, second)
	}
}
