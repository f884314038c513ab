package panos

import (
	"strings"
	"testing"

	"github.com/aryankumar/panosctl/internal/model"
)

func TestAddressEntryRoundTrip(t *testing.T) {
	addr := model.Address{
		Name:        "web-1",
		IPNetmask:   "10.0.0.10/32",
		Description: "primary web server",
		Tags:        []string{"web", "prod"},
	}

	element, err := marshalElement(addressToEntry(addr))
	if err != nil {
		t.Fatalf("marshalElement failed: %v", err)
	}

	for _, want := range []string{
		`entry name="web-1"`,
		"<ip-netmask>10.0.0.10/32</ip-netmask>",
		"<description>primary web server</description>",
		"<member>web</member>",
		"<member>prod</member>",
	} {
		if !strings.Contains(element, want) {
			t.Errorf("element %q should contain %q", element, want)
		}
	}

	back := entryToAddress(addressToEntry(addr))
	if back.Name != addr.Name || back.IPNetmask != addr.IPNetmask {
		t.Errorf("round trip changed address: %+v", back)
	}
	if len(back.Tags) != 2 {
		t.Errorf("round trip lost tags: %v", back.Tags)
	}
}

func TestAddressEntryOmitsEmptyFields(t *testing.T) {
	addr := model.Address{Name: "api", FQDN: "api.example.com"}

	element, err := marshalElement(addressToEntry(addr))
	if err != nil {
		t.Fatalf("marshalElement failed: %v", err)
	}

	if !strings.Contains(element, "<fqdn>api.example.com</fqdn>") {
		t.Errorf("element %q missing fqdn", element)
	}
	for _, absent := range []string{"ip-netmask", "ip-range", "description", "<tag>"} {
		if strings.Contains(element, absent) {
			t.Errorf("element %q should not contain %q", element, absent)
		}
	}
}

func TestGroupEntryStaticAndDynamic(t *testing.T) {
	static := model.AddressGroup{
		Name:          "web-servers",
		StaticMembers: []string{"web-1", "web-2"},
	}
	element, err := marshalElement(groupToEntry(static))
	if err != nil {
		t.Fatalf("marshalElement failed: %v", err)
	}
	if !strings.Contains(element, "<static>") || !strings.Contains(element, "<member>web-1</member>") {
		t.Errorf("static group element %q missing members", element)
	}

	dynamic := model.AddressGroup{
		Name:          "prod-web",
		DynamicFilter: "'prod' and 'web'",
	}
	element, err = marshalElement(groupToEntry(dynamic))
	if err != nil {
		t.Fatalf("marshalElement failed: %v", err)
	}
	if !strings.Contains(element, "<dynamic>") || !strings.Contains(element, "filter") {
		t.Errorf("dynamic group element %q missing filter", element)
	}
	if strings.Contains(element, "<static>") {
		t.Errorf("dynamic group element %q should not contain static members", element)
	}

	back := entryToGroup(groupToEntry(dynamic))
	if back.DynamicFilter != dynamic.DynamicFilter {
		t.Errorf("round trip changed filter: %q", back.DynamicFilter)
	}
	if back.IsStatic() {
		t.Error("dynamic group should not round trip as static")
	}
}
