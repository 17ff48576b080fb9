package cli

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ajroetker/go-sumlab/sumlab"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "zero", args: []string{"0"}, want: 0},
		{name: "1024", args: []string{"1024"}, want: 1024},
		{name: "missing", args: nil, wantErr: true},
		{name: "extra", args: []string{"1", "2"}, wantErr: true},
		{name: "not a number", args: []string{"ten"}, wantErr: true},
		{name: "negative", args: []string{"-4"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCount(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCount(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseCount(%q) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseCountWrapsStrconv(t *testing.T) {
	_, err := ParseCount([]string{"x"})
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("error %v does not wrap strconv.ErrSyntax", err)
	}
}

func TestRunEveryKernel(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"0", "0"},
		{"1", "0"},
		{"3", "3"},
		{"1024", "523776"},
	}
	for _, k := range sumlab.Global.Kernels() {
		for _, tt := range tests {
			var stdout, stderr bytes.Buffer
			code := Run(k.Name, []string{tt.arg}, &stdout, &stderr)
			if code != 0 {
				t.Fatalf("%s %s: exit %d, stderr %q", k.Name, tt.arg, code, stderr.String())
			}
			if got := strings.TrimSpace(stdout.String()); got != tt.want {
				t.Errorf("%s %s: printed %q, want %q", k.Name, tt.arg, got, tt.want)
			}
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name   string
		kernel string
		args   []string
	}{
		{"bad count", "sum_slice", []string{"abc"}},
		{"no count", "sum_slice", nil},
		{"unknown kernel", "sum_nope", []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := Run(tt.kernel, tt.args, &stdout, &stderr); code != 1 {
				t.Fatalf("exit = %d, want 1", code)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
			if !strings.HasPrefix(stderr.String(), "Error: ") {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}
