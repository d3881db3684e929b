package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/freeslot/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var (
		initFile bool
		edit     bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the effective configuration.

With --init, writes the defaults if no config file exists yet.
With --edit, prompts for each value and saves the result.`,
		Example: `  freeslot config
  freeslot config --init
  freeslot config --edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.resolvedConfigPath()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Config file: %s\n\n", path)

			if initFile || edit {
				if _, err := os.Stat(path); os.IsNotExist(err) {
					_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
					if err := a.config.SaveTo(path); err != nil {
						return fmt.Errorf("saving config: %w", err)
					}
					_, _ = fmt.Fprintf(out, "Created %s\n\n", path)
				}
			}

			printConfig(out, a.config)

			if !edit {
				return nil
			}
			return editConfig(bufio.NewReader(cmd.InOrStdin()), out, a.config, path)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with defaults if missing")
	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")

	return cmd
}

func editConfig(reader *bufio.Reader, out io.Writer, cfg *config.Config, path string) error {
	_, _ = fmt.Fprintln(out)
	edited := *cfg
	edited.Schedule.DayStart = promptValue(reader, out, "Day start", cfg.Schedule.DayStart)
	edited.Schedule.DayEnd = promptValue(reader, out, "Day end", cfg.Schedule.DayEnd)
	edited.Schedule.SlotMinutes = promptInt(reader, out, "Slot minutes", cfg.Schedule.SlotMinutes)
	edited.UI.Color = promptYesNo(reader, out, "Colored output", cfg.UI.Color)

	if err := edited.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := edited.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	*cfg = edited
	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(out, "Current configuration:")
	_, _ = fmt.Fprintln(out, "──────────────────────")
	_, _ = fmt.Fprintln(out, "[schedule]")
	_, _ = fmt.Fprintf(out, "  day_start    = %s\n", cfg.Schedule.DayStart)
	_, _ = fmt.Fprintf(out, "  day_end      = %s\n", cfg.Schedule.DayEnd)
	_, _ = fmt.Fprintf(out, "  slot_minutes = %d\n", cfg.Schedule.SlotMinutes)
	_, _ = fmt.Fprintln(out, "\n[ui]")
	_, _ = fmt.Fprintf(out, "  color        = %t\n", cfg.UI.Color)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		_, _ = fmt.Fprintf(out, "  Invalid number %q.\n", value)
	}
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string, current bool) bool {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}
	_, _ = fmt.Fprintf(out, "  %s [%s]: ", question, hint)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return current
	}
	return input == "y" || input == "yes"
}
