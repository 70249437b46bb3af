package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/princesinghrajput/eld-logsheet/convert"
	"github.com/princesinghrajput/eld-logsheet/logsheet"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <trip-result.json>",
	Short: "Print normalized daily log totals and violations",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var severityColor = map[string]*color.Color{
	logsheet.SeverityCritical: color.New(color.FgRed, color.Bold),
	logsheet.SeverityWarning:  color.New(color.FgYellow),
	logsheet.SeverityInfo:     color.New(color.FgCyan),
}

func runInspect(cmd *cobra.Command, args []string) error {
	result, err := readTripResult(args[0])
	if err != nil {
		return err
	}

	days := convert.DaysOrSample(result, time.Now())
	header := color.New(color.Bold)

	for _, day := range days {
		title := day.Label
		if day.IsSample {
			title += " (sample)"
		}
		header.Fprintf(cmd.OutOrStdout(), "%s  [%s]\n", title, day.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "  driving %s  on-duty %s  rest %s  sleeper %s  coverage %.0f%%\n",
			logsheet.FormatHours(day.Totals.DrivingMinutes),
			logsheet.FormatHours(day.Totals.OnDutyMinutes),
			logsheet.FormatHours(day.Totals.RestMinutes),
			logsheet.FormatHours(day.Totals.SleeperMinutes),
			day.Coverage*100)

		for _, ev := range day.Events {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-22s %s", ev.Label, ev.WindowLabel)
			if ev.Location != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  @ %s", ev.Location)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}

		for _, v := range day.Violations {
			c := severityColor[v.Severity]
			if c == nil {
				c = severityColor[logsheet.SeverityWarning]
			}
			c.Fprintf(cmd.OutOrStdout(), "  ! %s", v.Type)
			if v.Detail != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " - %s", v.Detail)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
