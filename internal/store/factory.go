package store

import (
	"fmt"
	"os"
	"strings"
)

const (
	StoreModeOff      = "off"
	StoreModeSQLite   = "sqlite"
	StoreModePostgres = "postgres"
)

func storeModeFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_MODE")))
	switch raw {
	case "", StoreModeOff, "none":
		return StoreModeOff
	case StoreModeSQLite, "local":
		return StoreModeSQLite
	case StoreModePostgres, "postgresql", "db":
		return StoreModePostgres
	default:
		return raw
	}
}

// NewServiceFromEnv selects the history backend from STORE_MODE. The
// returned mode names the backend actually chosen.
func NewServiceFromEnv() (Service, string, error) {
	mode := storeModeFromEnv()

	switch mode {
	case StoreModeOff:
		return NewNoopService(), mode, nil
	case StoreModeSQLite:
		svc, err := NewSQLiteServiceFromEnv()
		if err != nil {
			return nil, mode, err
		}
		return svc, mode, nil
	case StoreModePostgres:
		svc, err := NewPostgresServiceFromEnv()
		if err != nil {
			return nil, mode, err
		}
		return svc, mode, nil
	default:
		return nil, mode, fmt.Errorf("invalid STORE_MODE %q (supported: %s, %s, %s)",
			mode, StoreModeOff, StoreModeSQLite, StoreModePostgres)
	}
}
