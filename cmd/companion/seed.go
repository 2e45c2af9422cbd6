package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/english-companion/internal/datasync"
	"github.com/at-ishikawa/english-companion/internal/lesson"
)

func newSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Import and export lesson fixtures",
	}
	seedCmd.AddCommand(newSeedLessonsCommand(), newSeedExportCommand())
	return seedCmd
}

func newSeedLessonsCommand() *cobra.Command {
	var opts datasync.ImportOptions

	cmd := &cobra.Command{
		Use:   "lessons <file.yml>",
		Short: "Import lessons from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := datasync.ReadLessonFile(args[0])
			if err != nil {
				return fmt.Errorf("datasync.ReadLessonFile() > %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, err := openDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(lesson.NewDBRepository(db), out)
			result, err := importer.ImportLessons(cmd.Context(), file.Lessons, opts)
			if err != nil {
				return fmt.Errorf("importer.ImportLessons() > %w", err)
			}
			printImportSummary(cmd, result, opts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&opts.UpdateExisting, "update-existing", false, "Update lessons whose title already exists")
	return cmd
}

func newSeedExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.yml>",
		Short: "Export all lessons to a YAML file",
		Long: `Export all lessons to a YAML file in the format read by "seed lessons".

Only the vocabulary and grammar_points entries of each lesson's content are written.
Other keys stored in content_json are not exported and are lost on re-import.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			db, err := openDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			file, err := datasync.NewExporter(lesson.NewDBRepository(db)).Export(cmd.Context())
			if err != nil {
				return fmt.Errorf("exporter.Export() > %w", err)
			}
			if err := datasync.NewYAMLLessonSink(args[0]).WriteAll(file); err != nil {
				return fmt.Errorf("sink.WriteAll() > %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Exported %d lessons to %s\n", len(file.Lessons), args[0])
			return nil
		},
	}
}

func printImportSummary(cmd *cobra.Command, result *datasync.ImportResult, opts datasync.ImportOptions) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nImport Summary:")
	if opts.DryRun {
		color.New(color.FgYellow).Fprintln(out, "  (dry-run mode, no changes made)")
	}
	fmt.Fprintf(out, "  Lessons: %d new, %d skipped, %d updated\n", result.LessonsNew, result.LessonsSkipped, result.LessonsUpdated)
}
