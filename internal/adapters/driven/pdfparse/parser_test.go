package pdfparse

import (
	"context"
	"testing"
)

func TestParser_GarbageInput(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		data []byte
	}{
		{"not a pdf", []byte("just some text, no pdf structure")},
		{"truncated header", []byte("%PDF-1.4")},
		{"binary garbage", []byte{0x00, 0xFF, 0x13, 0x37, 0x00, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := p.Parse(context.Background(), tt.data)
			if err == nil {
				t.Fatal("expected error for corrupt input")
			}
			if pages != nil {
				t.Errorf("expected nil pages on failure, got %d", len(pages))
			}
		})
	}
}
