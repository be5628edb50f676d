package main

import "testing"

func TestArchitectureFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Architecture
		ok   bool
	}{
		{"amd64", ArchAMD64, true},
		{"i386", ArchI386, true},
		{"armhf", -1, false},
		{"", -1, false},
	}
	for _, tt := range tests {
		got, ok := ArchitectureFromString(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ArchitectureFromString(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMultiarchTag(t *testing.T) {
	if got := ArchAMD64.MultiarchTag(); got != "x86_64-linux-gnu" {
		t.Errorf("ArchAMD64.MultiarchTag() = %q", got)
	}
	if got := ArchI386.MultiarchTag(); got != "i386-linux-gnu" {
		t.Errorf("ArchI386.MultiarchTag() = %q", got)
	}
}

func TestSecondary(t *testing.T) {
	sec, ok := ArchAMD64.Secondary()
	if !ok || sec != ArchI386 {
		t.Errorf("ArchAMD64.Secondary() = %v, %v, want i386, true", sec, ok)
	}
	if _, ok := ArchI386.Secondary(); ok {
		t.Error("ArchI386.Secondary() should not exist")
	}
}

func TestProbeArchitecture(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["dpkg --print-architecture"] = "amd64\n"

	arch, err := ProbeArchitecture(runner, "dpkg")
	if err != nil {
		t.Fatalf("ProbeArchitecture() error: %v", err)
	}
	if arch != ArchAMD64 {
		t.Errorf("ProbeArchitecture() = %v, want amd64", arch)
	}
}

func TestProbeArchitectureUnsupported(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["dpkg --print-architecture"] = "armhf\n"

	if _, err := ProbeArchitecture(runner, "dpkg"); err == nil {
		t.Error("ProbeArchitecture() should fail for armhf")
	}
}

func TestProbeArchitectureToolFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.fails["dpkg --print-architecture"] = true

	if _, err := ProbeArchitecture(runner, "dpkg"); err == nil {
		t.Error("ProbeArchitecture() should fail when dpkg fails")
	}
}
