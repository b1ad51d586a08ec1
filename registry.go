package shaderpurge

import (
	"fmt"
	"strings"
)

// Hive identifies a registry root key.
type Hive int

const (
	LocalMachine Hive = iota
	CurrentUser
)

// String returns the conventional name of the hive.
func (h Hive) String() string {
	switch h {
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	default:
		return fmt.Sprintf("Hive(%d)", int(h))
	}
}

// RegistryValue is a named value of a registry key. Data holds a string for
// REG_SZ and REG_EXPAND_SZ, a uint64 for REG_DWORD and REG_QWORD, a []string
// for REG_MULTI_SZ and a []byte otherwise.
type RegistryValue struct {
	Name string
	Data any
}

// Registry enumerates the values of a registry key.
type Registry interface {
	EnumerateValues(hive Hive, keyPath string) ([]RegistryValue, error)
}

// MapRegistry is an in-memory Registry keyed by hive and key path.
// Key paths and value names match case-insensitively, as on Windows.
type MapRegistry map[Hive]map[string][]RegistryValue

// EnumerateValues implements Registry.
func (m MapRegistry) EnumerateValues(hive Hive, keyPath string) ([]RegistryValue, error) {
	for path, values := range m[hive] {
		if strings.EqualFold(path, keyPath) {
			return values, nil
		}
	}
	return nil, fmt.Errorf("%w: %v\\%s", ErrKeyNotFound, hive, keyPath)
}

// stringValue returns the data of the named value if it is a non-empty string.
func stringValue(values []RegistryValue, name string) (string, bool) {
	for _, v := range values {
		if !strings.EqualFold(v.Name, name) {
			continue
		}
		s, ok := v.Data.(string)
		return s, ok && s != ""
	}
	return "", false
}
