package main

import (
	"fmt"
	"os"
)

// WritePowerFlag rewrites the discrete-power flag file: "on" when the nvidia
// profile was enabled, "off" for intel. External power management tooling
// reads this file; this program only ever writes it.
func WritePowerFlag(path string, target Profile) error {
	value := "off"
	if target == ProfileNvidia {
		value = "on"
	}

	if err := os.WriteFile(path, []byte(value+"\n"), 0644); err != nil {
		return fmt.Errorf("writing power profile flag: %w", err)
	}
	return nil
}
