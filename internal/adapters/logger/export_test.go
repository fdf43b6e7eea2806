// export_test.go exports private functions for white-box testing.
package logger

// CollectErrorEntriesExported exposes collectErrorEntries to tests.
func CollectErrorEntriesExported(err error) []ErrorEntry {
	return collectErrorEntries(err)
}

// FormatErrorEntriesExported exposes formatErrorEntries to tests.
func FormatErrorEntriesExported(entries []ErrorEntry) string {
	return formatErrorEntries(entries)
}
