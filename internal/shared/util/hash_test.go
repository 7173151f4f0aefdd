package util

import "testing"

func TestPromptHash(t *testing.T) {
	prompt := "Analyze this resume: John Doe"
	got := PromptHash(prompt)
	if got != PromptHash(prompt) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != promptHashLen {
		t.Fatalf("expected %d hex characters, got %d", promptHashLen, len(got))
	}
	if got == PromptHash(prompt+" ") {
		t.Fatalf("expected different prompts to hash differently")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: " resume.pdf ", want: "resume.pdf"},
		{in: "C:\\Users\\me\\cv.docx", want: "C:_Users_me_cv.docx"},
		{in: "dir/cv.txt", want: "dir_cv.txt"},
		{in: "../etc/passwd", wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, tt := range tests {
		got, err := SanitizeFileName(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("SanitizeFileName(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("SanitizeFileName(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
