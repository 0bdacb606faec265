// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

package validation

import (
	"strings"
	"testing"
)

type recommendRequest struct {
	Query string `query:"q" validate:"searchquery"`
	N     int    `query:"n" validate:"min=0,max=50"`
}

type serverSection struct {
	Port   int    `koanf:"port" validate:"min=1,max=65535"`
	Format string `koanf:"format" validate:"oneof=csv duckdb"`
}

type appConfig struct {
	Server serverSection `koanf:"server"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}

func TestValidateStruct_Request(t *testing.T) {
	tests := []struct {
		name      string
		req       recommendRequest
		wantField string
		wantTag   string
	}{
		{name: "valid", req: recommendRequest{Query: "Song One", N: 5}},
		{name: "zero n allowed", req: recommendRequest{Query: "x", N: 0}},
		{name: "empty query", req: recommendRequest{Query: "", N: 5}, wantField: "q", wantTag: "searchquery"},
		{name: "blank query", req: recommendRequest{Query: "   ", N: 5}, wantField: "q", wantTag: "searchquery"},
		{name: "control character", req: recommendRequest{Query: "song\x00one", N: 5}, wantField: "q", wantTag: "searchquery"},
		{name: "too long", req: recommendRequest{Query: strings.Repeat("a", MaxQueryLength+1)}, wantField: "q", wantTag: "searchquery"},
		{name: "max length", req: recommendRequest{Query: strings.Repeat("é", MaxQueryLength)}},
		{name: "n too large", req: recommendRequest{Query: "x", N: 51}, wantField: "n", wantTag: "max"},
		{name: "negative n", req: recommendRequest{Query: "x", N: -1}, wantField: "n", wantTag: "min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("got %d field errors, want 1", len(verr.Fields))
			}
			fe := verr.Fields[0]
			if fe.Field != tt.wantField || fe.Tag != tt.wantTag {
				t.Errorf("got field=%q tag=%q, want field=%q tag=%q", fe.Field, fe.Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	verr := ValidateStruct(recommendRequest{Query: "x", N: 99})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if got, want := verr.Error(), "n must be at most 50"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidateStruct_NestedKoanfNames(t *testing.T) {
	verr := ValidateStruct(appConfig{Server: serverSection{Port: 0, Format: "xml"}})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("got %d field errors, want 2", len(verr.Fields))
	}
	if verr.Fields[0].Field != "server.port" {
		t.Errorf("Fields[0].Field = %q, want server.port", verr.Fields[0].Field)
	}
	if got, want := verr.Fields[1].Message, "server.format must be one of: csv duckdb"; got != want {
		t.Errorf("Fields[1].Message = %q, want %q", got, want)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() should join messages: %q", verr.Error())
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(recommendRequest{Query: ""}).ToAPIError()
	if single.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", single.Code, ErrorCode)
	}
	if single.Details["field"] != "q" {
		t.Errorf("Details[field] = %v, want q", single.Details["field"])
	}

	multi := ValidateStruct(recommendRequest{Query: "", N: 100}).ToAPIError()
	fields, ok := multi.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %v, want two field errors", multi.Details["fields"])
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty Message = %q", empty.Message)
	}
}
