package panos

import (
	"encoding/xml"
	"fmt"

	"github.com/aryankumar/panosctl/internal/model"
)

// memberList is the <member> list wrapper used throughout the config schema
type memberList struct {
	Members []string `xml:"member"`
}

// addressEntry is the wire form of an address object
type addressEntry struct {
	XMLName     xml.Name    `xml:"entry"`
	Name        string      `xml:"name,attr"`
	IPNetmask   string      `xml:"ip-netmask,omitempty"`
	FQDN        string      `xml:"fqdn,omitempty"`
	IPRange     string      `xml:"ip-range,omitempty"`
	Description string      `xml:"description,omitempty"`
	Tag         *memberList `xml:"tag,omitempty"`
}

// groupEntry is the wire form of an address group
type groupEntry struct {
	XMLName     xml.Name    `xml:"entry"`
	Name        string      `xml:"name,attr"`
	Static      *memberList `xml:"static,omitempty"`
	Dynamic     *dynamicDef `xml:"dynamic,omitempty"`
	Description string      `xml:"description,omitempty"`
	Tag         *memberList `xml:"tag,omitempty"`
}

type dynamicDef struct {
	Filter string `xml:"filter"`
}

func tagList(tags []string) *memberList {
	if len(tags) == 0 {
		return nil
	}
	return &memberList{Members: tags}
}

func addressToEntry(a model.Address) addressEntry {
	return addressEntry{
		Name:        a.Name,
		IPNetmask:   a.IPNetmask,
		FQDN:        a.FQDN,
		IPRange:     a.IPRange,
		Description: a.Description,
		Tag:         tagList(a.Tags),
	}
}

func entryToAddress(e addressEntry) model.Address {
	addr := model.Address{
		Name:        e.Name,
		IPNetmask:   e.IPNetmask,
		FQDN:        e.FQDN,
		IPRange:     e.IPRange,
		Description: e.Description,
	}
	if e.Tag != nil {
		addr.Tags = e.Tag.Members
	}
	return addr
}

func groupToEntry(g model.AddressGroup) groupEntry {
	e := groupEntry{
		Name:        g.Name,
		Description: g.Description,
		Tag:         tagList(g.Tags),
	}
	if g.IsStatic() {
		e.Static = &memberList{Members: g.StaticMembers}
	} else {
		e.Dynamic = &dynamicDef{Filter: g.DynamicFilter}
	}
	return e
}

func entryToGroup(e groupEntry) model.AddressGroup {
	g := model.AddressGroup{
		Name:        e.Name,
		Description: e.Description,
	}
	if e.Static != nil {
		g.StaticMembers = e.Static.Members
	}
	if e.Dynamic != nil {
		g.DynamicFilter = e.Dynamic.Filter
	}
	if e.Tag != nil {
		g.Tags = e.Tag.Members
	}
	return g
}

// marshalElement renders a config entry for the element= parameter of a
// set request
func marshalElement(v any) (string, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config element: %w", err)
	}
	return string(data), nil
}
