package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    "T101",
			wantMsg: "Configuration file not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "protocol error",
			code:    "T304",
			wantMsg: "Handler not found",
			wantCat: CategoryProtocol,
		},
		{
			name:    "runtime error",
			code:    "T401",
			wantMsg: "Handler panicked",
			wantCat: CategoryRuntime,
		},
		{
			name:    "unknown error code",
			code:    "T999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("T102").Wrap(fmt.Errorf("unexpected EOF"))
	if got := err.Error(); got != "T102: Configuration parse failed: unexpected EOF" {
		t.Errorf("Error() = %q", got)
	}

	uncoded := Newf(CategoryCLI, "bad %s", "flag")
	if got := uncoded.Error(); got != "bad flag" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapAndIs(t *testing.T) {
	err := New("T101").Wrap(fs.ErrNotExist)

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped error should match with errors.Is")
	}
	if !stderrors.Is(fmt.Errorf("loading: %w", err), New("T101")) {
		t.Error("errors of the same code should match")
	}
	if stderrors.Is(err, New("T102")) {
		t.Error("errors of different codes should not match")
	}
	if CodeOf(fmt.Errorf("outer: %w", err)) != "T101" {
		t.Error("CodeOf should find the code through wrapping")
	}
	if CodeOf(fs.ErrNotExist) != "" {
		t.Error("CodeOf of a plain error should be empty")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "T101") != nil {
		t.Error("FromError(nil) should be nil")
	}

	plain := stderrors.New("boom")
	te := FromError(plain, "T202")
	if te.Code != "T202" || te.Wrapped != plain {
		t.Errorf("FromError(plain) = %+v", te)
	}

	coded := New("T303")
	if FromError(fmt.Errorf("queue: %w", coded), "T202") != coded {
		t.Error("FromError should return a TallyError found in the chain")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("T103").
		WithDetailf("server.port must be between 1 and 65535, got %d", 70000).
		WithSuggestion("use 8080").
		Wrap(stderrors.New("range"))
	out := err.Format()

	for _, want := range []string{
		"ERROR T103: Invalid configuration value",
		"server.port must be between 1 and 65535, got 70000",
		"Cause: range",
		"Hint: use 8080",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("colors should be disabled")
	}
}

func TestFormatJSON(t *testing.T) {
	var got map[string]string
	if err := json.Unmarshal([]byte(New("T301").FormatJSON()), &got); err != nil {
		t.Fatal(err)
	}
	if got["code"] != "T301" || got["category"] != "protocol" || got["message"] != "Malformed frame" {
		t.Errorf("FormatJSON = %v", got)
	}
	if _, ok := got["suggestion"]; ok {
		t.Error("empty suggestion should be omitted")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line too long: %q", line)
		}
	}
	if len(lines) < 2 {
		t.Errorf("expected wrapping, got %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should give no lines")
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	PrintError(&buf, New("T201"))
	if !strings.Contains(buf.String(), "ERROR T201") {
		t.Errorf("coded output = %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("plain output = %q", buf.String())
	}
}

func TestRegisteredCodes(t *testing.T) {
	codes := GetAllCodes()
	for i, code := range codes {
		tmpl, ok := GetTemplate(code)
		if !ok || tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("%s: incomplete template %+v", code, tmpl)
		}
		if i > 0 && codes[i-1] >= code {
			t.Errorf("codes not sorted: %v", codes)
		}
	}
}
