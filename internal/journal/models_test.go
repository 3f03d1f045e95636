package journal_test

import (
	"testing"

	"inkwell/internal/journal"
)

func TestDeriveAttachmentStyle(t *testing.T) {
	cases := []struct {
		attachmentType string
		expected       string
	}{
		{"paperclip", "standard_clip"},
		{"staple", "staple"},
		{"paste", "colorful_clip"},
		{"PAPERCLIP", "standard_clip"},
		{"", ""},
		{"glitter", ""},
	}
	for _, tc := range cases {
		if got := journal.DeriveAttachmentStyle(tc.attachmentType); got != tc.expected {
			t.Fatalf("DeriveAttachmentStyle(%q) = %q, want %q", tc.attachmentType, got, tc.expected)
		}
	}
}

func TestResolvedAttachmentStyleLegacyRow(t *testing.T) {
	// Rows persisted before styles existed carry only the legacy type.
	legacy := &journal.Media{AttachmentType: "paste"}
	if got := legacy.ResolvedAttachmentStyle(); got != "colorful_clip" {
		t.Fatalf("expected derived style, got %q", got)
	}

	explicit := &journal.Media{AttachmentType: "paste", AttachmentStyle: "binder_clip"}
	if got := explicit.ResolvedAttachmentStyle(); got != "binder_clip" {
		t.Fatalf("expected explicit style preserved, got %q", got)
	}

	plain := &journal.Media{}
	if got := plain.ResolvedAttachmentStyle(); got != "" {
		t.Fatalf("expected no style, got %q", got)
	}
}

func TestDecodeStickerSelection(t *testing.T) {
	cases := []struct {
		name     string
		encoded  string
		expected []string
	}{
		{"valid", `["star","heart"]`, []string{"star", "heart"}},
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"corrupt", `["star",`, nil},
		{"wrong type", `{"a":1}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := journal.DecodeStickerSelection(tc.encoded)
			if len(got) != len(tc.expected) {
				t.Fatalf("DecodeStickerSelection(%q) = %v, want %v", tc.encoded, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("DecodeStickerSelection(%q) = %v, want %v", tc.encoded, got, tc.expected)
				}
			}
		})
	}
}

func TestEncodeStickerSelectionRoundTrip(t *testing.T) {
	encoded := journal.EncodeStickerSelection([]string{"pie", "star"})
	decoded := journal.DecodeStickerSelection(encoded)
	if len(decoded) != 2 || decoded[0] != "pie" || decoded[1] != "star" {
		t.Fatalf("round trip failed: %v", decoded)
	}
	if journal.EncodeStickerSelection(nil) != "" {
		t.Fatal("expected empty selection to encode to empty string")
	}
}

func TestParseElementKind(t *testing.T) {
	if _, ok := journal.ParseElementKind("washi_tape"); !ok {
		t.Fatal("expected washi_tape to parse")
	}
	if _, ok := journal.ParseElementKind(" Photo "); !ok {
		t.Fatal("expected case and whitespace tolerant parse")
	}
	if _, ok := journal.ParseElementKind("hologram"); ok {
		t.Fatal("expected unknown kind rejected")
	}
}
