package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is a 0x-prefixed hexadecimal quantity as returned by Ethereum JSON-RPC
// nodes (block numbers, receipt status codes).
type Hex string

// parseHex validates s and returns its numeric value.
func parseHex(s string) (uint64, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return 0, fmt.Errorf("hex string must start with 0x")
	}

	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return v, nil
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
// A JSON null leaves h unchanged.
func (h *Hex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if _, err := parseHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// IsEmpty reports whether h holds no value.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// Uint64 returns the decoded value, or zero when h is empty or invalid.
func (h Hex) Uint64() uint64 {
	v, _ := parseHex(string(h))
	return v
}

// ConfirmationsAt returns how many blocks, inclusive, separate the block h from
// latest. A block is its own first confirmation; zero means latest is behind h.
func (h Hex) ConfirmationsAt(latest Hex) uint64 {
	included, head := h.Uint64(), latest.Uint64()
	if h.IsEmpty() || head < included {
		return 0
	}

	return head - included + 1
}
