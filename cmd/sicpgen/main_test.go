package main

import "testing"

func TestConfigName(t *testing.T) {
	if got := configName(""); got != "default.yaml" {
		t.Errorf("configName(\"\") = %q, want default.yaml", got)
	}
	if got := configName("/etc/sicpgen/custom.yaml"); got != "custom.yaml" {
		t.Errorf("configName() = %q, want custom.yaml", got)
	}
}
