package main

import "testing"

func TestClassifyProfile(t *testing.T) {
	tests := []struct {
		name string
		want Profile
	}{
		{"nvidia-current", ProfileNvidia},
		{"nvidia-340", ProfileNvidia},
		{"nvidia-current-prime", ProfileIntel},
		{"nvidia-340-prime", ProfileIntel},
		{"mesa", ProfileUnknown},
		{"", ProfileUnknown},
		// The prime marker alone is not enough without nvidia.
		{"prime", ProfileUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyProfile(tt.name); got != tt.want {
				t.Errorf("ClassifyProfile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestProfileString(t *testing.T) {
	tests := []struct {
		profile Profile
		want    string
	}{
		{ProfileIntel, "intel"},
		{ProfileNvidia, "nvidia"},
		{ProfileUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.profile.String(); got != tt.want {
			t.Errorf("Profile(%d).String() = %q, want %q", tt.profile, got, tt.want)
		}
	}
}
