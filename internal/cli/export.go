package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Export writes all readings of the signed-in user to a JSON file in the
// data directory and prints its path. The file gets a unique name so
// repeated exports never overwrite each other.
func (a *App) Export(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Sign in first")
		return err
	}

	readings, err := a.svc.UserReadings(ctx, user.ID)
	if err != nil {
		printlnFn("Failed to load readings:", err.Error())
		return err
	}

	data, err := json.MarshalIndent(readings, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(a.config.DataDir, fmt.Sprintf("export-%s.json", uuid.NewString()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		printlnFn("Failed to write export:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Exported %d readings to %s", len(readings), path))
	return nil
}
