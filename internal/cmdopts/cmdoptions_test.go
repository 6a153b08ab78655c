package cmdopts

import (
	"os"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/jtcooper10/proto-build/internal/log"
	"github.com/stretchr/testify/assert"
)

// NewCmdOptions returns a new instance of Options with default values
func NewCmdOptions(args ...string) *Options {
	cmdOpts := new(Options)
	_, _ = flags.NewParser(cmdOpts, flags.PrintErrors).ParseArgs(args)
	return cmdOpts
}

func TestParseFail(t *testing.T) {
	tests := [][]string{
		{0: "go-test", "--unknown-option"},
		{0: "go-test", "--retries=many"},
		{0: "go-test", "surplus-argument"},
	}
	for _, d := range tests {
		os.Args = d
		_, err := New(nil)
		assert.Error(t, err)
	}
}

func TestParseSuccess(t *testing.T) {
	tests := [][]string{
		{0: "go-test", "--help"},
	}
	for _, d := range tests {
		os.Args = d
		c, err := New(nil)
		assert.True(t, c.Help)
		assert.Error(t, err)
	}
}

func TestLogLevel(t *testing.T) {
	c := &Options{Logging: log.CmdOpts{LogLevel: "debug"}}
	assert.True(t, c.Verbose())
	c = &Options{Logging: log.CmdOpts{LogLevel: "info"}}
	assert.False(t, c.Verbose())
}

func TestNewCmdOptions(t *testing.T) {
	c := NewCmdOptions("--out=munkey", "--timeout=30s")
	assert.NotNil(t, c)
	assert.Equal(t, "munkey", c.Layout.Out)
}

func TestConfig(t *testing.T) {
	os.Args = []string{0: "config_test"} // the defaults describe a complete build
	_, err := New(nil)
	assert.NoError(t, err)

	os.Args = []string{0: "config_test", "--unknown"}
	_, err = New(nil)
	assert.Error(t, err)

	os.Args = []string{0: "config_test"} // out arg is missing, but set PB_OUT
	t.Setenv("PB_OUT", "build")
	c, err := New(nil)
	assert.NoError(t, err)
	assert.Equal(t, "build", c.Layout.Out)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
		errorMsg    string
	}{
		{
			name:        "defaults are valid",
			args:        []string{0: "test"},
			expectError: false,
		},
		{
			name:        "empty output root",
			args:        []string{0: "test", "--out="},
			expectError: true,
			errorMsg:    "output root",
		},
		{
			name:        "negative retries",
			args:        []string{0: "test", "--retries=-1"},
			expectError: true,
			errorMsg:    "--retries",
		},
		{
			name:        "negative timeout",
			args:        []string{0: "test", "--timeout=-5s"},
			expectError: true,
			errorMsg:    "--timeout",
		},
		{
			name:        "zero retry delay",
			args:        []string{0: "test", "--retry-delay=0s"},
			expectError: true,
			errorMsg:    "--retry-delay",
		},
		{
			name:        "retrying configuration",
			args:        []string{0: "test", "--retries=3", "--retry-delay=50ms", "--timeout=1m"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			_, err := New(nil)
			if tt.expectError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
