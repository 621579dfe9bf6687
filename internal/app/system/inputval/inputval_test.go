package inputval_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dalemusser/matterhub/internal/app/system/inputval"
)

type sampleForm struct {
	Name  string `validate:"required,max=10" label:"Name"`
	Notes string `validate:"max=5" label:"Notes"`
	Free  string
}

func TestValidateRequired(t *testing.T) {
	res := inputval.Validate(sampleForm{Name: "   "})
	if !res.HasErrors() {
		t.Fatal("blank required field should fail")
	}
	if got := res.First(); got != "Name is required." {
		t.Errorf("First() = %q", got)
	}
}

func TestValidateMax(t *testing.T) {
	res := inputval.Validate(sampleForm{Name: "ok", Notes: "toolong"})
	if !res.HasErrors() {
		t.Fatal("over-length field should fail")
	}
	if got := res.First(); !strings.Contains(got, "at most 5") {
		t.Errorf("First() = %q", got)
	}
}

func TestValidatePasses(t *testing.T) {
	res := inputval.Validate(sampleForm{Name: "fine", Notes: "ok", Free: strings.Repeat("x", 100)})
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.All())
	}
}

func TestValidateAcceptsPointer(t *testing.T) {
	res := inputval.Validate(&sampleForm{})
	if !res.HasErrors() {
		t.Fatal("pointer input should be validated too")
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"125.50", 125.50, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"-5", 0, true},
	}
	for _, tc := range tests {
		got, err := inputval.ParseMoney(tc.raw, "Paid")
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMoney(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoney(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoney(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseOptionalMoney(t *testing.T) {
	got, err := inputval.ParseOptionalMoney("", "Rate amount")
	if err != nil || got != nil {
		t.Errorf("empty input should be absent, got %v, %v", got, err)
	}

	got, err = inputval.ParseOptionalMoney("250", "Rate amount")
	if err != nil {
		t.Fatalf("ParseOptionalMoney: %v", err)
	}
	if got == nil || *got != 250 {
		t.Errorf("got %v, want 250", got)
	}

	if _, err := inputval.ParseOptionalMoney("nope", "Rate amount"); err == nil {
		t.Error("non-numeric input should fail")
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{" , , ", []string{}},
		{"estate", []string{"estate"}},
		{"estate, probate ,  urgent", []string{"estate", "probate", "urgent"}},
	}
	for _, tc := range tests {
		got := inputval.SplitTags(tc.raw)
		if got == nil {
			t.Errorf("SplitTags(%q) returned nil", tc.raw)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
