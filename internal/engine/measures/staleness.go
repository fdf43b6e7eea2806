package measures

import "go.trai.ch/osw/internal/core/ports"

// StaleCheck is one named reason a cached measure must be updated.
type StaleCheck struct {
	Name string
	Test func(desc ports.MeasureDescriptor) bool
}

// StalenessChecks are evaluated in order; the first that holds wins.
var StalenessChecks = []StaleCheck{
	{Name: "files-changed", Test: ports.MeasureDescriptor.CheckForUpdatesFiles},
	{Name: "metadata-changed", Test: ports.MeasureDescriptor.CheckForUpdatesMetadata},
	{Name: "missing-required-fields", Test: ports.MeasureDescriptor.MissingRequiredFields},
	{Name: "missing-generated-output", Test: ports.MeasureDescriptor.MissingGeneratedOutputs},
}

// Staleness returns the name of the first check that holds for desc.
func Staleness(desc ports.MeasureDescriptor) (string, bool) {
	for _, check := range StalenessChecks {
		if check.Test(desc) {
			return check.Name, true
		}
	}
	return "", false
}
