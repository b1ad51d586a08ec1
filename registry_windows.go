//go:build windows

package shaderpurge

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

type systemRegistry struct{}

// NewSystemRegistry returns a Registry backed by the Windows registry.
func NewSystemRegistry() Registry {
	return systemRegistry{}
}

// EnumerateValues implements Registry. Values that cannot be read are left out.
func (systemRegistry) EnumerateValues(hive Hive, keyPath string) ([]RegistryValue, error) {
	root, err := rootKey(hive)
	if err != nil {
		return nil, err
	}

	k, err := registry.OpenKey(root, keyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v\\%s", ErrKeyNotFound, hive, keyPath)
		}
		return nil, fmt.Errorf("failed to open %v\\%s: %w", hive, keyPath, err)
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, fmt.Errorf("failed to read value names of %v\\%s: %w", hive, keyPath, err)
	}

	values := make([]RegistryValue, 0, len(names))
	for _, name := range names {
		data, err := readValue(k, name)
		if err != nil {
			continue
		}
		values = append(values, RegistryValue{Name: name, Data: data})
	}
	return values, nil
}

func rootKey(hive Hive) (registry.Key, error) {
	switch hive {
	case LocalMachine:
		return registry.LOCAL_MACHINE, nil
	case CurrentUser:
		return registry.CURRENT_USER, nil
	default:
		return 0, fmt.Errorf("unknown hive %v", hive)
	}
}

func readValue(k registry.Key, name string) (any, error) {
	_, valtype, err := k.GetValue(name, nil)
	if err != nil {
		return nil, err
	}

	switch valtype {
	case registry.SZ, registry.EXPAND_SZ:
		s, _, err := k.GetStringValue(name)
		return s, err
	case registry.DWORD, registry.QWORD:
		n, _, err := k.GetIntegerValue(name)
		return n, err
	case registry.MULTI_SZ:
		s, _, err := k.GetStringsValue(name)
		return s, err
	default:
		b, _, err := k.GetBinaryValue(name)
		return b, err
	}
}
