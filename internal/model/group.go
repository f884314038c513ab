package model

import "fmt"

// AddressGroup is either a static member list or a dynamic tag filter,
// never both
type AddressGroup struct {
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty"`
	StaticMembers []string `yaml:"static_members,omitempty" json:"static_members,omitempty"`
	DynamicFilter string   `yaml:"dynamic_filter,omitempty" json:"dynamic_filter,omitempty"`
	Tags          []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// IsStatic reports whether the group has a static member list
func (g AddressGroup) IsStatic() bool {
	return len(g.StaticMembers) > 0
}

// Validate checks the group definition
func (g AddressGroup) Validate() error {
	if err := ValidateName(g.Name); err != nil {
		return err
	}

	hasStatic := len(g.StaticMembers) > 0
	hasDynamic := g.DynamicFilter != ""

	if hasStatic && hasDynamic {
		return fmt.Errorf("address group %q cannot be both static and dynamic", g.Name)
	}
	if !hasStatic && !hasDynamic {
		return fmt.Errorf("address group %q: either static_members or dynamic_filter must be provided", g.Name)
	}

	for _, m := range g.StaticMembers {
		if m == "" {
			return fmt.Errorf("address group %q: empty static member", g.Name)
		}
	}

	return nil
}
