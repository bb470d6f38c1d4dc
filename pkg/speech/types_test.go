package speech_test

import (
	"testing"
	"time"

	"github.com/MrWong99/lexivox/pkg/speech"
)

func TestTranscript_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   speech.Transcript
		want string
	}{
		{"empty", speech.Transcript{}, ""},
		{"single word", speech.FromTexts("hello"), "hello"},
		{"several words", speech.FromTexts("the", "cat", "sat"), "the cat sat"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.in.Text(); got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFromTexts(t *testing.T) {
	t.Parallel()

	tr := speech.FromTexts("a", "b")
	if len(tr.Words) != 2 {
		t.Fatalf("FromTexts produced %d words, want 2", len(tr.Words))
	}
	if tr.Words[0].Text != "a" || tr.Words[1].Text != "b" {
		t.Errorf("FromTexts words = %+v", tr.Words)
	}
	if tr.Words[0].Start != 0 || tr.Words[0].End != time.Duration(0) {
		t.Errorf("FromTexts timing = %+v, want zero", tr.Words[0])
	}
}
