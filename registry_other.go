//go:build !windows

package shaderpurge

type systemRegistry struct{}

// NewSystemRegistry returns a Registry that fails every lookup with
// ErrRegistryUnsupported.
func NewSystemRegistry() Registry {
	return systemRegistry{}
}

// EnumerateValues implements Registry.
func (systemRegistry) EnumerateValues(Hive, string) ([]RegistryValue, error) {
	return nil, ErrRegistryUnsupported
}
