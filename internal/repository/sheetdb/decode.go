package sheetdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// The webhook answers in one of three shapes depending on which workflow
// node produced the response: a bare array of row objects, an
// array-of-arrays whose first row is the column header, or a wrapper
// object holding either of those under a well-known key. Anything else
// degrades to an empty collection so the rest of the system never sees
// malformed input.

// decodeRows normalizes any known response shape into a list of row maps.
func decodeRows(raw json.RawMessage) []map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []map[string]any{}
	}

	switch raw[0] {
	case '[':
		return decodeArray(raw)
	case '{':
		return decodeWrapped(raw)
	default:
		slog.Warn("Entity store response has unexpected shape, treating as empty")
		return []map[string]any{}
	}
}

func decodeArray(raw json.RawMessage) []map[string]any {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("Entity store array response is malformed, treating as empty", "error", err)
		return []map[string]any{}
	}
	if len(items) == 0 {
		return []map[string]any{}
	}

	if first := bytes.TrimSpace(items[0]); len(first) > 0 && first[0] == '[' {
		return decodeHeaderGrid(raw)
	}
	return decodeObjectRows(items)
}

// decodeObjectRows handles the bare array-of-objects shape. Rows that are
// not objects are skipped, not fatal.
func decodeObjectRows(items []json.RawMessage) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		var row map[string]any
		if err := json.Unmarshal(item, &row); err != nil {
			slog.Warn("Skipping malformed row in entity store response", "error", err)
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// decodeHeaderGrid handles the array-of-arrays shape where the first row
// is the column header. Cells beyond the header width are dropped; short
// rows leave the remaining columns absent.
func decodeHeaderGrid(raw json.RawMessage) []map[string]any {
	var grid [][]any
	if err := json.Unmarshal(raw, &grid); err != nil {
		slog.Warn("Entity store grid response is malformed, treating as empty", "error", err)
		return []map[string]any{}
	}
	if len(grid) < 2 {
		return []map[string]any{}
	}

	header := make([]string, len(grid[0]))
	for i, cell := range grid[0] {
		header[i] = cellString(cell)
	}

	rows := make([]map[string]any, 0, len(grid)-1)
	for _, line := range grid[1:] {
		row := make(map[string]any, len(header))
		for i, cell := range line {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

// decodeWrapped handles the wrapper-object shape, e.g. {"data": [...]}.
func decodeWrapped(raw json.RawMessage) []map[string]any {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		slog.Warn("Entity store wrapper response is malformed, treating as empty", "error", err)
		return []map[string]any{}
	}
	for _, key := range []string{"data", "rows", "records", "result"} {
		if inner, ok := wrapper[key]; ok {
			return decodeRows(inner)
		}
	}
	slog.Warn("Entity store wrapper response has no recognized collection key, treating as empty")
	return []map[string]any{}
}

// decodeRow extracts a single row from a mutation response: either the
// row object itself, a wrapper around it, or a collection holding it.
// Returns false when the webhook acked without echoing the row.
func decodeRow(raw json.RawMessage) (map[string]any, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}

	if raw[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, false
		}
		// A wrapper may hold the row object directly, not just a
		// collection, so recurse on the inner value rather than going
		// through the collection decoder.
		for _, key := range []string{"data", "rows", "records", "result"} {
			if inner, ok := wrapper[key]; ok {
				return decodeRow(inner)
			}
		}
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil || len(row) == 0 {
			return nil, false
		}
		return row, true
	}

	rows := decodeRows(raw)
	if len(rows) > 0 {
		return rows[0], true
	}
	return nil, false
}

// rowString returns the first present key's value as a trimmed string.
// Sheet columns drift between camelCase and snake_case across workflow
// revisions, so lookups accept aliases.
func rowString(row map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := row[key]; ok {
			if s := cellString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// rowOptString returns a pointer for optional columns, nil when absent.
func rowOptString(row map[string]any, keys ...string) *string {
	for _, key := range keys {
		if v, ok := row[key]; ok {
			if s := cellString(v); s != "" {
				return &s
			}
		}
	}
	return nil
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		// JSON numbers; sheet ids and rates come through this way.
		if c == float64(int64(c)) {
			return fmt.Sprintf("%d", int64(c))
		}
		return fmt.Sprintf("%v", c)
	case bool:
		if c {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", c)
	}
}
