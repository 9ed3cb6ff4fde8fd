package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-a"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-a", "-s", "memory"},
			allowedFlags: []string{"-a", "-s"},
			want:         []string{"-a", "-s", "memory"},
		},
		{
			name:         "several flags keep order",
			args:         []string{"-s", "redis", "-c", "conf.json", "-a", "https://x/"},
			allowedFlags: []string{"-a", "-s"},
			want:         []string{"-s", "redis", "-a", "https://x/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Run("short flag", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		assert.Equal(t, "one.json", ConfigFile([]string{"-a", "http://x", "-c", "one.json"}))
	})

	t.Run("long flag with equals", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		assert.Equal(t, "two.json", ConfigFile([]string{"-config=two.json"}))
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "env.json")
		assert.Equal(t, "env.json", ConfigFile(nil))
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "env.json")
		assert.Equal(t, "flag.json", ConfigFile([]string{"-c", "flag.json"}))
	})

	t.Run("nothing", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		assert.Empty(t, ConfigFile([]string{"-a", "http://x"}))
	})
}
