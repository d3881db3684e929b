package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/freeslot/internal/clock"
	"github.com/javiermolinar/freeslot/internal/schedule"
	"github.com/javiermolinar/freeslot/internal/slot"
)

func (a *App) freeCmd() *cobra.Command {
	var (
		dayStart    string
		dayEnd      string
		slotMinutes int
		busy        []string
		file        string
		asJSON      bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "free",
		Short: "List free slots for a working day",
		Long: `List the free consultation slots of a working day.

Booked consultations come from --busy entries (HH:MM/minutes) and/or a
TOML file given with --file. The working day and slot length default to
the [schedule] section of the config file.`,
		Example: `  freeslot free
  freeslot free --busy 09:00/30 --busy 11:00/45 --busy 13:00/60
  freeslot free --start 08:00 --end 12:00 --slot 20
  freeslot free --file today.toml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor || !a.config.UI.Color {
				DisableColor()
			}

			start, end := a.config.Window()
			var err error
			if dayStart != "" {
				if start, err = clock.Parse(dayStart); err != nil {
					return fmt.Errorf("start: %w", err)
				}
			}
			if dayEnd != "" {
				if end, err = clock.Parse(dayEnd); err != nil {
					return fmt.Errorf("end: %w", err)
				}
			}
			if !cmd.Flags().Changed("slot") {
				slotMinutes = a.config.Schedule.SlotMinutes
			}

			sched := &schedule.Schedule{}
			if file != "" {
				if sched, err = schedule.LoadFile(file); err != nil {
					return err
				}
			}
			entries, err := schedule.ParseEntries(busy)
			if err != nil {
				return err
			}
			sched.Add(entries...)

			starts, durations := sched.Arrays()
			a.logger.Debug("calculating free slots",
				zap.String("day_start", clock.Format(start)),
				zap.String("day_end", clock.Format(end)),
				zap.Int("slot_minutes", slotMinutes),
				zap.Int("consultations", sched.Len()),
			)

			slots, err := slot.AvailablePeriods(starts, durations, start, end, slotMinutes)
			if err != nil {
				a.logger.Warn("input rejected", zap.Error(err))
				return fmt.Errorf("calculating free slots: %w", err)
			}
			a.logger.Debug("free slots calculated", zap.Int("slots", len(slots)))

			day := FreeDay{
				Window:      slot.Window{Start: start, End: end},
				SlotMinutes: slotMinutes,
				Busy:        sched.Len(),
				Slots:       slots,
			}
			if asJSON {
				return WriteFreeDayJSON(cmd.OutOrStdout(), day)
			}
			PrintFreeDay(cmd.OutOrStdout(), day, barWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&dayStart, "start", "", "Working day start (HH:MM, default from config)")
	cmd.Flags().StringVar(&dayEnd, "end", "", "Working day end (HH:MM, default from config)")
	cmd.Flags().IntVar(&slotMinutes, "slot", 0, "Slot length in minutes (default from config)")
	cmd.Flags().StringArrayVar(&busy, "busy", nil, "Booked consultation as HH:MM/minutes (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "TOML file with [[consultation]] entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print slots as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (a *App) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format MINUTES...",
		Short: "Render minute offsets from midnight as HH:MM",
		Long: `Render each offset, given in minutes from midnight, as HH:MM.

Offsets outside a single day are clamped to 00:00 and 23:59.`,
		Example: `  freeslot format 0 540 1020`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				minutes, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("offset %q must be a whole number of minutes", arg)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatOffset(minutes))
			}
			return nil
		},
	}
}
