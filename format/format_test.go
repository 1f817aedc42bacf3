package format

import (
	"errors"
	"testing"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  error
	}{
		{path: "a.yaml", want: YAMLFormat},
		{path: "dir/a.YML", want: YAMLFormat},
		{path: "a.json", want: JSONFormat},
		{path: "/etc/merge.toml", want: TOMLFormat},
		{path: "a.txt", err: ErrBadFormat},
		{path: "a.y", err: ErrBadFormat},
		{path: "noext", err: ErrBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FromPath(tt.path)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s: got %s", f, g)
		}
		if f.Suffixes()[0] != "."+string(d) {
			t.Errorf("%s: suffixes %q", f, f.Suffixes())
		}
	}
	if _, err := Format(42).MarshalText(); err == nil {
		t.Error("expected error for unknown format")
	}
}
