package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Widget", false},
		{"valid single char", "W", false},
		{"valid max length", strings.Repeat("a", 255), false},
		{"valid inner spaces", "Green Tea 500g", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 256), true},
		{"leading whitespace", " Widget", true},
		{"trailing whitespace", "Widget ", true},
		{"only whitespace", "   ", true},
		{"control character", "Wid\x00get", true},
		{"newline", "Wid\nget", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewItemName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if got.String() != tt.input {
				t.Fatalf("expected %q preserved, got %q", tt.input, got)
			}
		})
	}
}

func TestItemName_EqualFold(t *testing.T) {
	name, err := NewItemName("Green Tea")
	if err != nil {
		t.Fatalf("NewItemName: %v", err)
	}
	if !name.EqualFold("GREEN TEA") || !name.EqualFold("green tea") {
		t.Fatal("expected case-insensitive match")
	}
	if name.EqualFold("Green Teas") {
		t.Fatal("expected mismatch for different name")
	}
}

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Beverages", "Beverages", false},
		{"trims surrounding space", "  Beverages ", "Beverages", false},
		{"empty", "", "", true},
		{"only whitespace", "  ", "", true},
		{"too long", strings.Repeat("c", 256), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
