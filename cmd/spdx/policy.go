package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/EmbarkStudios/spdx"
)

// policyFile is the on-disk TOML shape of an acceptance policy:
//
//	accepted = [
//	    "MIT",
//	    "Apache-2.0 WITH LLVM-exception",
//	    "BSD-3-Clause",
//	]
type policyFile struct {
	Accepted []string `toml:"accepted"`
}

// policy is a parsed acceptance policy. The licensee order follows
// the file and doubles as minimization priority.
type policy struct {
	accepted []spdx.Licensee
}

func loadPolicy(path string, mode spdx.ParseMode) (*policy, error) {
	var pf policyFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return nil, fmt.Errorf("failed to read policy %s: %w", path, err)
	}
	if len(pf.Accepted) == 0 {
		return nil, fmt.Errorf("policy %s accepts no licensees", path)
	}

	pol := &policy{accepted: make([]spdx.Licensee, 0, len(pf.Accepted))}
	for _, entry := range pf.Accepted {
		lic, err := spdx.ParseLicenseeWithMode(entry, mode)
		if err != nil {
			return nil, fmt.Errorf("policy licensee %q: %w", entry, err)
		}
		pol.accepted = append(pol.accepted, lic)
	}
	return pol, nil
}

// allows reports whether any accepted licensee meets the requirement.
func (p *policy) allows(req spdx.LicenseReq) bool {
	for _, lic := range p.accepted {
		if lic.Satisfies(req) {
			return true
		}
	}
	return false
}
