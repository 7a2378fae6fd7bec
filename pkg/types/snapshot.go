package types

import "encoding/json"

// Snapshot is the export/import interchange format: collection names
// mapped to the full array of records in that collection. The whole
// structure is JSON-serializable and suitable for file backup.
type Snapshot map[string][]json.RawMessage
