package keys

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KeysPathEnv overrides the location of the keys.json file.
const KeysPathEnv = "TOOLBOX_KEYS_PATH"

// Get resolves the API key registered under alias, falling back to the
// environment variable envVar. Resolution order:
//
//  1. the keys.json file pointed to by TOOLBOX_KEYS_PATH, if set
//  2. keys.json in the user config directory (e.g. ~/.config/toolbox)
//  3. the envVar environment variable
//
// An empty value counts as not found. When no source yields a key, the
// returned error tells the user both ways to configure it.
func Get(alias, envVar string) (string, error) {
	for _, path := range candidatePaths() {
		key, err := fromFile(path, alias)
		if err != nil {
			return "", err
		}
		if key != "" {
			return key, nil
		}
	}

	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("no API key found for %q: add it to keys.json or set the %s environment variable", alias, envVar)
}

// candidatePaths returns the keys.json locations to try, in order.
func candidatePaths() []string {
	var paths []string

	if explicit := os.Getenv(KeysPathEnv); explicit != "" {
		paths = append(paths, explicit)
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "toolbox", "keys.json"))
	}

	return paths
}

// fromFile reads the flat alias→key JSON map at path and returns the key for
// alias. A missing file is not an error; a malformed file is, so that a typo
// in keys.json does not silently disable every tool.
func fromFile(path, alias string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("error reading keys file %s: %w", path, err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("error parsing keys file %s: %w", path, err)
	}

	return entries[alias], nil
}
