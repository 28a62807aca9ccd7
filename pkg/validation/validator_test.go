package validation

import (
	"strings"
	"testing"
)

type testRecord struct {
	ID    string `validate:"required,recordid"`
	Title string `validate:"max=10"`
}

type testGroup struct {
	Key   string       `validate:"required"`
	Items []testRecord `validate:"dive"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantError string
	}{
		{
			name:  "valid group",
			value: &testGroup{Key: "symptoms", Items: []testRecord{{ID: "s1", Title: "Fatigue"}}},
		},
		{
			name:      "missing key",
			value:     &testGroup{Items: nil},
			wantError: "Key: field is required",
		},
		{
			name:      "nested missing id",
			value:     &testGroup{Key: "k", Items: []testRecord{{ID: "ok"}, {ID: ""}}},
			wantError: "Items[1].ID: field is required",
		},
		{
			name:      "blank id",
			value:     &testGroup{Key: "k", Items: []testRecord{{ID: "   "}}},
			wantError: "Items[0].ID: id cannot be empty",
		},
		{
			name:      "title too long",
			value:     &testGroup{Key: "k", Items: []testRecord{{ID: "a", Title: "a very long title"}}},
			wantError: "Items[0].Title: must not exceed 10",
		},
		{
			name:      "nil",
			value:     nil,
			wantError: "cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.value)
			if tt.wantError == "" {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantError) {
				t.Fatalf("Error = %v, want containing %q", err, tt.wantError)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"condition-42", false},
		{"domain:nutrition:entity:7", false},
		{"", true},
		{"\t ", true},
		{"bad\x00id", true},
		{strings.Repeat("x", MaxIDLength+1), true},
	}

	for _, tt := range tests {
		err := ValidateID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}
