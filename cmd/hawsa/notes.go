package main

import (
	"fmt"

	"github.com/hawsadev/hawsa/internal/config"
	"github.com/hawsadev/hawsa/internal/service/ui"
	"github.com/hawsadev/hawsa/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var noteType string

var notesCmd = &cobra.Command{
	Use:   "notes <user_id>",
	Short: "Print a user's long-term notes",
	Long:  `Lists the long-term notes accumulated for a user, ordered by importance and recency, together with the stored profile.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		userID := args[0]
		appCfg := config.NewAppConfig(ctx)

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		profile, err := sqlite.NewProfilesRepo(db).Get(ctx, userID)
		if err != nil {
			return err
		}
		if profile != nil {
			fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("%s — %s / %s (confidence %.2f)",
				userID, profile.Personality, profile.Expertise, profile.ConfidenceScore)))
		}

		notes, err := sqlite.NewNotesRepo(db).List(ctx, userID, noteType)
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println(ui.DescStyle.Render("no notes"))
			return nil
		}

		for _, n := range notes {
			fmt.Println(ui.NoteStyle.Render("• " + n))
		}
		return nil
	},
}

func init() {
	notesCmd.Flags().StringVarP(&noteType, "type", "t", "", "filter by note type")
	rootCmd.AddCommand(notesCmd)
}
