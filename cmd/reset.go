package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe local state (event log and snapshots)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !force {
			fmt.Printf("This will delete all history and progress at %s.\n", dbPath)
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("Local state wiped.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the database")
}
