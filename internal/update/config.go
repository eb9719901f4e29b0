package update

import (
	"os"
	"strings"
)

type RuntimeConfig struct {
	StatePath        string
	BackupPath       string
	ArchiveDBPath    string
	ClipboardEnabled bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StatePath:        "math_homework_state.json",
		BackupPath:       "math_homework_state.json.bak",
		ArchiveDBPath:    "hwcheck_snapshots.db",
		ClipboardEnabled: true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("HWCHECK_STATE_PATH"); ok {
		cfg.StatePath = v
		cfg.BackupPath = v + ".bak"
	}
	if v, ok := getEnvString("HWCHECK_BACKUP_PATH"); ok {
		cfg.BackupPath = v
	}
	if v, ok := getEnvString("HWCHECK_ARCHIVE_DB"); ok {
		if strings.EqualFold(v, "off") {
			cfg.ArchiveDBPath = ""
		} else {
			cfg.ArchiveDBPath = v
		}
	}
	if v, ok := getEnvBool("HWCHECK_CLIPBOARD"); ok {
		cfg.ClipboardEnabled = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
