package cluster

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCatalogFile reads cluster specs from a JSON file and compiles them.
// The file carries the same shape as the built-in table, so a corrected
// cluster table can be deployed without a rebuild.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var specs []ClusterSpec
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return CompileCatalog(specs)
}
