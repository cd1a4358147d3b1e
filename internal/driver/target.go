// Package driver wires the checker (internal/sema) to the pieces of a real
// CLI that sit around it: target configuration, parallel per-package
// fan-out, and the diagnostic output path. It deliberately does not parse
// source text — core spec §1 treats the lexer/parser as a separate,
// "comparatively mechanical" stage, so a Loader here supplies already-built
// units the way an external parser would.
package driver

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"surge/internal/types"
)

// targetFile mirrors a TargetConfig TOML document:
//
//	[target]
//	name = "x86_64-linux"
//	int_bits = 64
//	uint_bits = 64
type targetFile struct {
	Target struct {
		Name     string `toml:"name"`
		IntBits  int    `toml:"int_bits"`
		UintBits int    `toml:"uint_bits"`
	} `toml:"target"`
}

// LoadTargetConfig reads a TargetConfig TOML file and resolves it to a
// types.Target (core spec §3: "int/uint alias onto the target's concrete
// width"). uint_bits defaults to int_bits when omitted.
func LoadTargetConfig(path string) (types.Target, string, error) {
	var tf targetFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return types.Target{}, "", fmt.Errorf("loading target config %s: %w", path, err)
	}
	if tf.Target.IntBits != 32 && tf.Target.IntBits != 64 {
		return types.Target{}, "", fmt.Errorf("target config %s: [target].int_bits must be 32 or 64, got %d", path, tf.Target.IntBits)
	}
	uintBits := tf.Target.UintBits
	if uintBits == 0 {
		uintBits = tf.Target.IntBits
	}
	if uintBits != 32 && uintBits != 64 {
		return types.Target{}, "", fmt.Errorf("target config %s: [target].uint_bits must be 32 or 64, got %d", path, uintBits)
	}
	return types.Target{IntWidth: tf.Target.IntBits, UintWidth: uintBits}, tf.Target.Name, nil
}
