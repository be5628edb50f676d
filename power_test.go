package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWritePowerFlag(t *testing.T) {
	tests := []struct {
		target Profile
		want   string
	}{
		{ProfileNvidia, "on\n"},
		{ProfileIntel, "off\n"},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prime-discrete")
			if err := WritePowerFlag(path, tt.target); err != nil {
				t.Fatalf("WritePowerFlag() error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("flag = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestWritePowerFlagOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prime-discrete")
	if err := os.WriteFile(path, []byte("on\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WritePowerFlag(path, ProfileIntel); err != nil {
		t.Fatalf("WritePowerFlag() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "off\n" {
		t.Errorf("flag = %q, want full rewrite to off", data)
	}
}

func TestWritePowerFlagBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "flag")
	if err := WritePowerFlag(path, ProfileNvidia); err == nil {
		t.Error("WritePowerFlag() should fail for an unwritable path")
	}
}
