package nim

import (
	"strings"

	"github.com/aixadm/nimres/internal/model"
)

// ParseCatalog converts lsnim -l output into a ResourceCatalog. The format is
// line oriented: a line without an equals sign is a record header naming a
// resource (its trailing colon stripped), and every `key = value` line below
// it belongs to that resource until the next header.
//
// Parsing is best effort and never fails: malformed lines are folded into the
// two-state scan (awaiting a header vs. inside a record) by the single test
// "does this line contain an equals sign". Empty input yields an empty
// catalog.
func ParseCatalog(stdout string) *model.ResourceCatalog {
	catalog := model.NewResourceCatalog()

	var name string
	var record model.ResourceRecord

	for _, raw := range strings.Split(stdout, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			// Header line: seal the previous record and open a new one.
			if record != nil {
				catalog.Set(name, record)
			}
			name = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			record = make(model.ResourceRecord)
			continue
		}

		if record == nil {
			// Attribute before any header; nowhere to put it.
			continue
		}
		record[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if record != nil {
		catalog.Set(name, record)
	}

	return catalog
}
