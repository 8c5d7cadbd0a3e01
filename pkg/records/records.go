package records

import (
	"encoding/json"
	"fmt"

	"github.com/coltonb-mixpanel/import-sorter/pkg/errors"
	"github.com/coltonb-mixpanel/import-sorter/pkg/sorter"
)

// Decode parses one group's import records from their JSON hand-off form, a
// single array of record objects. Specifier kinds outside the known set are
// kept as-is and simply never qualify as namespace-style; absent spans stay
// absent.
func Decode(data []byte) ([]sorter.Import, error) {
	var imports []sorter.Import
	if err := json.Unmarshal(data, &imports); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToDecodeRecords, err)
	}
	return imports, nil
}

// Encode renders records back into their JSON hand-off form.
func Encode(imports []sorter.Import) ([]byte, error) {
	if imports == nil {
		imports = []sorter.Import{}
	}
	data, err := json.MarshalIndent(imports, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToEncodeRecords, err)
	}
	return append(data, '\n'), nil
}

// Sources returns just the ordered module specifiers of records.
func Sources(imports []sorter.Import) []string {
	sources := make([]string, 0, len(imports))
	for _, imp := range imports {
		sources = append(sources, imp.Source)
	}
	return sources
}
