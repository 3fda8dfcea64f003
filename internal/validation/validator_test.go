// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	// Test that GetValidator returns the same instance
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

// TestStruct for basic validation tests
type TestStruct struct {
	Title    string `validate:"required,min=1,max=120"`
	Capacity int    `validate:"min=2,max=50"`
	Duration int    `validate:"min=10,max=240"`
	Energy   string `validate:"omitempty,oneof=low neutral high"`
	Rating   int    `validate:"omitempty,min=1,max=5"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input TestStruct
	}{
		{
			name: "all valid fields",
			input: TestStruct{
				Title:    "Board games at the common room",
				Capacity: 6,
				Duration: 90,
				Energy:   "neutral",
				Rating:   4,
			},
		},
		{
			name: "minimum values",
			input: TestStruct{
				Title:    "A",
				Capacity: 2,
				Duration: 10,
			},
		},
		{
			name: "maximum values",
			input: TestStruct{
				Title:    "A",
				Capacity: 50,
				Duration: 240,
				Energy:   "high",
				Rating:   5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     TestStruct
		wantField string
		wantTag   string
	}{
		{
			name: "missing required title",
			input: TestStruct{
				Title:    "",
				Capacity: 6,
				Duration: 60,
			},
			wantField: "Title",
			wantTag:   "required",
		},
		{
			name: "capacity too high",
			input: TestStruct{
				Title:    "Quest",
				Capacity: 80,
				Duration: 60,
			},
			wantField: "Capacity",
			wantTag:   "max",
		},
		{
			name: "duration too low",
			input: TestStruct{
				Title:    "Quest",
				Capacity: 6,
				Duration: 5,
			},
			wantField: "Duration",
			wantTag:   "min",
		},
		{
			name: "energy not in enum",
			input: TestStruct{
				Title:    "Quest",
				Capacity: 6,
				Duration: 60,
				Energy:   "hyper",
			},
			wantField: "Energy",
			wantTag:   "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 validation error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("tag = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

// ===================================================================================================
// Custom rfc3339 Validator Tests
// ===================================================================================================

type timestampStruct struct {
	StartTime string `validate:"required,rfc3339"`
}

func TestValidateStruct_RFC3339(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"UTC timestamp", "2026-09-01T18:30:00Z", false},
		{"numeric offset", "2026-09-01T18:30:00+08:00", false},
		{"fractional seconds", "2026-09-01T18:30:00.500Z", false},
		{"date only", "2026-09-01", true},
		{"missing timezone", "2026-09-01T18:30:00", true},
		{"not a timestamp", "tomorrow evening", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&timestampStruct{StartTime: tt.value})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

// ===================================================================================================
// Error Translation Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&TestStruct{Title: "", Capacity: 6, Duration: 60})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "Title is required" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "Title" {
		t.Errorf("details field = %v", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&TestStruct{Title: "", Capacity: 100, Duration: 60})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Title") || !strings.Contains(apiErr.Message, "Capacity") {
		t.Errorf("message should mention both fields, got %q", apiErr.Message)
	}

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("details fields has unexpected type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("expected 2 field entries, got %d", len(fields))
	}
}

func TestTranslateError_Messages(t *testing.T) {
	err := ValidateStruct(&TestStruct{Title: "Quest", Capacity: 1, Duration: 60})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := err.Error(); got != "Capacity must be at least 2" {
		t.Errorf("Error() = %q", got)
	}
}
