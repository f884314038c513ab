package panos

import (
	"fmt"
	"strings"
)

// sharedNames are the device-group values that address the shared
// configuration scope rather than a Panorama device group
var sharedNames = map[string]bool{
	"":        true,
	"shared":  true,
	"-shared": true,
}

// IsShared reports whether a device-group name refers to the shared scope
func IsShared(deviceGroup string) bool {
	return sharedNames[strings.ToLower(deviceGroup)]
}

// containerXPath returns the xpath of an object container (e.g.
// "address" or "address-group") in the given device group, or in the
// shared scope when the name is empty or "shared".
func containerXPath(deviceGroup, container string) string {
	if IsShared(deviceGroup) {
		return fmt.Sprintf("/config/shared/%s", container)
	}
	return fmt.Sprintf(
		"/config/devices/entry[@name='localhost.localdomain']/device-group/entry[@name='%s']/%s",
		deviceGroup, container)
}

// entryXPath returns the xpath of a single named entry inside a container
func entryXPath(deviceGroup, container, name string) string {
	return fmt.Sprintf("%s/entry[@name='%s']", containerXPath(deviceGroup, container), name)
}

// addressXPath returns the xpath for address objects; name may be empty
// to address the whole container
func addressXPath(deviceGroup, name string) string {
	if name == "" {
		return containerXPath(deviceGroup, "address")
	}
	return entryXPath(deviceGroup, "address", name)
}

// addressGroupXPath returns the xpath for address groups; name may be
// empty to address the whole container
func addressGroupXPath(deviceGroup, name string) string {
	if name == "" {
		return containerXPath(deviceGroup, "address-group")
	}
	return entryXPath(deviceGroup, "address-group", name)
}
