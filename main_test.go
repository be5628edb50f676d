package main

import (
	"errors"
	"testing"
)

func TestRunSwitchRequiresRoot(t *testing.T) {
	orig := requireRoot
	requireRoot = func() error { return errors.New("switching profiles requires root privileges") }
	defer func() { requireRoot = orig }()

	if err := runSwitch(ProfileNvidia); err == nil {
		t.Error("runSwitch() should fail without root, before touching any alternatives")
	}
}
