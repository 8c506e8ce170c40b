package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fileorg/file-organizer/internal/classify"
	"github.com/fileorg/file-organizer/internal/model"
	"github.com/fileorg/file-organizer/internal/organize"
)

func newRootCommand() *cobra.Command {
	var (
		modeFlag     string
		actionFlag   string
		conflictFlag string
		recursive    bool
		dryRun       bool
		configPath   string
		logPath      string
		destName     string
		quiet        bool
	)

	rootCmd := &cobra.Command{
		Use:           "organize SOURCE",
		Short:         "Sort the files of a folder into category subfolders",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, args[0], organizeFlags{
				mode:       modeFlag,
				action:     actionFlag,
				conflict:   conflictFlag,
				recursive:  recursive,
				dryRun:     dryRun,
				configPath: configPath,
				logPath:    logPath,
				destName:   destName,
				quiet:      quiet,
			})
		},
	}

	rootCmd.Flags().StringVar(&modeFlag, "mode", string(model.ModeByType), "Classification mode: type or name")
	rootCmd.Flags().StringVar(&actionFlag, "action", string(model.ActionMove), "File action: move or copy")
	rootCmd.Flags().StringVar(&conflictFlag, "conflict", string(model.ConflictRename), "Conflict policy: skip, overwrite or rename")
	rootCmd.Flags().BoolVar(&recursive, "recursive", false, "Also organize files in subfolders")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned operations without touching files")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a JSON category mapping file")
	rootCmd.Flags().StringVar(&logPath, "log", "", "Append per-file outcome lines to this file")
	rootCmd.Flags().StringVar(&destName, "dest-name", organize.DefaultDestName, "Name of the destination folder inside SOURCE")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress per-file output, print only the summary")

	return rootCmd
}

type organizeFlags struct {
	mode       string
	action     string
	conflict   string
	recursive  bool
	dryRun     bool
	configPath string
	logPath    string
	destName   string
	quiet      bool
}

func runOrganize(cmd *cobra.Command, source string, flags organizeFlags) error {
	mode, err := model.ParseMode(flags.mode)
	if err != nil {
		return err
	}
	action, err := model.ParseActionKind(flags.action)
	if err != nil {
		return err
	}
	conflict, err := model.ParseConflictPolicy(flags.conflict)
	if err != nil {
		return err
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}

	var table *classify.Table
	if flags.configPath != "" {
		table, err = classify.LoadOverride(flags.configPath)
		if err != nil {
			return err
		}
	}

	engine, err := organize.New(organize.Config{
		SourceRoot: absSource,
		Mode:       mode,
		Action:     action,
		Conflict:   conflict,
		Recursive:  flags.recursive,
		DryRun:     flags.dryRun,
		Table:      table,
		DestName:   flags.destName,
	})
	if err != nil {
		return err
	}

	var logFile *os.File
	if flags.logPath != "" {
		logFile, err = os.OpenFile(flags.logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
	}

	out := cmd.OutOrStdout()
	sink := func(outcome model.Outcome) {
		line := outcome.DisplayLine()
		if !flags.quiet {
			fmt.Fprintln(out, line)
		}
		if logFile != nil {
			fmt.Fprintln(logFile, line)
		}
	}

	outcomes, runErr := engine.Run(cmd.Context(), sink)

	if len(outcomes) > 0 || runErr == nil {
		fmt.Fprintln(out, renderSummary(outcomes))
	}

	return runErr
}
