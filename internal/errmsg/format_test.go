//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpApplyEdit,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpApplyEdit,
			err:      errors.New("ratio must be positive"),
			expected: "Failed to apply edit: ratio must be positive",
		},
		{
			name:     "config operation",
			op:       OpLoadConfig,
			err:      errors.New("permission denied"),
			expected: "Failed to load configuration: permission denied",
		},
		{
			name:     "initialize operation",
			op:       OpInitialize,
			err:      errors.New("no tty"),
			expected: "Failed to initialize application: no tty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpParseValue,
			context:  "abc",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpParseValue,
			context:  "1.2.3",
			err:      errors.New("not a number"),
			expected: "Failed to parse value '1.2.3': not a number",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpParseValue,
			context:  "",
			err:      errors.New("not a number"),
			expected: "Failed to parse value: not a number",
		},
		{
			name:     "config with path context",
			op:       OpLoadConfig,
			context:  "/home/user/.config/ritzel/config.toml",
			err:      errors.New("invalid toml"),
			expected: "Failed to load configuration '/home/user/.config/ritzel/config.toml': invalid toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpParseValue, OpApplyEdit,
		OpLoadConfig, OpOpenLog, OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			result := Format(op, testErr)
			expected := "Failed to " + string(op) + ": test error"
			if result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
