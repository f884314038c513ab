package model

import (
	"fmt"
	"os"

	"github.com/aryankumar/panosctl/internal/util"
	"gopkg.in/yaml.v3"
)

// AddressFile is the YAML document shape for bulk address loads
type AddressFile struct {
	Addresses []Address `yaml:"addresses"`
}

// GroupFile is the YAML document shape for bulk address-group loads
type GroupFile struct {
	AddressGroups []AddressGroup `yaml:"address_groups"`
}

// LoadAddresses reads and validates a bulk-load YAML file.
// The file must contain an "addresses" key; every entry is validated
// before anything is returned, so a batch never starts with known-bad
// objects in it.
func LoadAddresses(path string) ([]Address, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, "failed to read %s", path)
	}

	var file AddressFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, util.WrapErrorf(err, "failed to parse %s", path)
	}

	if file.Addresses == nil {
		return nil, fmt.Errorf("%s: missing required key %q", path, "addresses")
	}

	for i, addr := range file.Addresses {
		if err := addr.Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
	}

	return file.Addresses, nil
}

// LoadAddressGroups reads and validates a bulk-load YAML file with an
// "address_groups" key
func LoadAddressGroups(path string) ([]AddressGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, "failed to read %s", path)
	}

	var file GroupFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, util.WrapErrorf(err, "failed to parse %s", path)
	}

	if file.AddressGroups == nil {
		return nil, fmt.Errorf("%s: missing required key %q", path, "address_groups")
	}

	for i, grp := range file.AddressGroups {
		if err := grp.Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
	}

	return file.AddressGroups, nil
}
