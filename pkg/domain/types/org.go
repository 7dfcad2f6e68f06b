package types

import "fmt"

// OrgSize represents the size category of an organization
type OrgSize string

const (
	OrgSizeStartup OrgSize = "startup"
	OrgSizeSmall   OrgSize = "small"
	OrgSizeMedium  OrgSize = "medium"
	OrgSizeLarge   OrgSize = "large"
)

// IsValid checks if the organization size is valid
func (s OrgSize) IsValid() bool {
	switch s {
	case OrgSizeStartup, OrgSizeSmall, OrgSizeMedium, OrgSizeLarge:
		return true
	default:
		return false
	}
}

// String returns the string representation of the organization size
func (s OrgSize) String() string {
	return string(s)
}

// Framework represents a compliance framework an organization reports against
type Framework string

const (
	FrameworkISO27001 Framework = "iso27001"
	FrameworkNIST     Framework = "nist"
	FrameworkSOX      Framework = "sox"
	FrameworkGDPR     Framework = "gdpr"
	FrameworkHIPAA    Framework = "hipaa"
	FrameworkCustom   Framework = "custom"
)

// IsValid checks if the framework is valid
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkISO27001, FrameworkNIST, FrameworkSOX,
		FrameworkGDPR, FrameworkHIPAA, FrameworkCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation of the framework
func (f Framework) String() string {
	return string(f)
}

// ParseFramework parses a string into a Framework
func ParseFramework(s string) (Framework, error) {
	framework := Framework(s)
	if !framework.IsValid() {
		return "", fmt.Errorf("invalid compliance framework: %s", s)
	}
	return framework, nil
}
