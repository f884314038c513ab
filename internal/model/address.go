package model

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/aryankumar/panosctl/internal/util"
)

// Address type constants as reported by the device
const (
	TypeIPNetmask = "ip-netmask"
	TypeFQDN      = "fqdn"
	TypeIPRange   = "ip-range"
)

// maxNameLen is the device-enforced limit on object names
const maxNameLen = 63

// Address is an address object. Exactly one of IPNetmask, FQDN and
// IPRange must be set.
type Address struct {
	Name        string   `yaml:"name" json:"name"`
	IPNetmask   string   `yaml:"ip_netmask,omitempty" json:"ip_netmask,omitempty"`
	FQDN        string   `yaml:"fqdn,omitempty" json:"fqdn,omitempty"`
	IPRange     string   `yaml:"ip_range,omitempty" json:"ip_range,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Type returns the device-side address type for the populated value field
func (a Address) Type() string {
	switch {
	case a.IPNetmask != "":
		return TypeIPNetmask
	case a.FQDN != "":
		return TypeFQDN
	case a.IPRange != "":
		return TypeIPRange
	default:
		return ""
	}
}

// Value returns the populated value field
func (a Address) Value() string {
	switch {
	case a.IPNetmask != "":
		return a.IPNetmask
	case a.FQDN != "":
		return a.FQDN
	default:
		return a.IPRange
	}
}

// Validate checks the object against device constraints before it is
// sent anywhere
func (a Address) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}

	set := 0
	for _, v := range []string{a.IPNetmask, a.FQDN, a.IPRange} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return fmt.Errorf("address %q: one of ip_netmask, fqdn or ip_range must be provided", a.Name)
	}
	if set > 1 {
		return fmt.Errorf("address %q: ip_netmask, fqdn and ip_range are mutually exclusive", a.Name)
	}

	if a.IPNetmask != "" {
		if err := validateNetmask(a.IPNetmask); err != nil {
			return fmt.Errorf("address %q: %w", a.Name, err)
		}
	}
	if a.IPRange != "" {
		if err := validateRange(a.IPRange); err != nil {
			return fmt.Errorf("address %q: %w", a.Name, err)
		}
	}

	return nil
}

// ValidateName checks an object name against device constraints.
// Quote characters are rejected because names end up embedded in
// xpath expressions.
func ValidateName(name string) error {
	if name == "" {
		return util.NewValidationError("name", nil, "must not be empty")
	}
	if len(name) > maxNameLen {
		return util.NewValidationError("name", name, fmt.Sprintf("exceeds %d characters", maxNameLen))
	}
	if strings.ContainsAny(name, `'"`) {
		return util.NewValidationError("name", name, "must not contain quote characters")
	}
	return nil
}

// validateNetmask accepts a CIDR prefix or a bare IP address
func validateNetmask(v string) error {
	if _, err := netip.ParsePrefix(v); err == nil {
		return nil
	}
	if _, err := netip.ParseAddr(v); err == nil {
		return nil
	}
	return util.NewValidationError("ip_netmask", v, "not a valid IP address or network")
}

// validateRange accepts "start-end" with two parseable addresses
func validateRange(v string) error {
	start, end, ok := strings.Cut(v, "-")
	if !ok {
		return util.NewValidationError("ip_range", v, "must be start-end")
	}

	lo, err := netip.ParseAddr(strings.TrimSpace(start))
	if err != nil {
		return util.NewValidationError("ip_range", v, "bad start address")
	}
	hi, err := netip.ParseAddr(strings.TrimSpace(end))
	if err != nil {
		return util.NewValidationError("ip_range", v, "bad end address")
	}
	if hi.Less(lo) {
		return util.NewValidationError("ip_range", v, "end precedes start")
	}

	return nil
}
