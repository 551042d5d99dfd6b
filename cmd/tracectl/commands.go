package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"traceability-backend/internal/cleaning"
	"traceability-backend/internal/engine"
	"traceability-backend/internal/export"
	"traceability-backend/internal/reminder"

	"github.com/spf13/cobra"
)

func newRootCmd(open opener) *cobra.Command {
	var (
		dsn     string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "tracectl",
		Short: "Inspect and export the food traceability log books",
		Long: `Inspect and export the food traceability log books.

Examples:
  tracectl alerts                      # items close to their DLC/DDM
  tracectl due --date 2024-01-10       # cleaning areas due on a day
  tracectl export lots --out ./backup  # lots CSV into ./backup
  tracectl remind                      # run one reminder check
`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN (default: DATABASE_DSN)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	load := func(cmd *cobra.Command) (*env, error) {
		return open(cmd.Context(), dsn, verbose)
	}

	root.AddCommand(alertsCmd(load), dueCmd(load), exportCmd(load), remindCmd(load))
	return root
}

type loader func(cmd *cobra.Command) (*env, error)

func alertsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List in-stock items within the expiry warning window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load(cmd)
			if err != nil {
				return err
			}
			snap := e.app.Snapshot()
			alerts := engine.ExpiryAlerts(snap.Inbound, snap.Settings.DLCWarningDays, e.app.Now())
			return printAlerts(cmd.OutOrStdout(), alerts)
		},
	}
}

func printAlerts(w io.Writer, alerts []engine.ExpiryAlert) error {
	if len(alerts) == 0 {
		_, err := fmt.Fprintln(w, "No expiry alerts.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAYS\tEXPIRY\tNAME\tLOT\tSUPPLIER")
	for _, a := range alerts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", a.DaysLeft, a.Item.ExpiryDate, a.Item.Name, a.Item.LotNumber, a.Item.Supplier)
	}
	return tw.Flush()
}

func dueCmd(load loader) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List cleaning areas due on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load(cmd)
			if err != nil {
				return err
			}
			status, err := cleaning.NewService(e.app).Status(date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			due := 0
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "AREA\tFREQUENCY\tLAST DONE")
			for _, s := range status {
				if !s.Due {
					continue
				}
				due++
				last := s.LastDone
				if last == "" {
					last = "never"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Area.Name, s.Area.Frequency, last)
			}
			if due == 0 {
				_, err := fmt.Fprintln(out, "Nothing due.")
				return err
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "reference date YYYY-MM-DD (default today)")
	return cmd
}

func exportCmd(load loader) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:       "export {lots|temperatures|json|xlsx}",
		Short:     "Write an export file named after today's date",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"lots", "temperatures", "json", "xlsx"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load(cmd)
			if err != nil {
				return err
			}
			path, err := writeExport(e, args[0], outDir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}

func writeExport(e *env, kind, dir string) (string, error) {
	snap := e.app.Snapshot()
	now := e.app.Now()

	var name string
	switch kind {
	case "lots":
		name = export.Filename("lots", "csv", now)
	case "temperatures":
		name = export.Filename("temperatures", "csv", now)
	case "json":
		name = export.Filename("backup", "json", now)
	case "xlsx":
		name = export.Filename("", "xlsx", now)
	default:
		return "", fmt.Errorf("unknown export %q", kind)
	}
	path := filepath.Join(dir, name)

	if kind == "xlsx" {
		f, err := export.Workbook(snap)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return path, f.SaveAs(path)
	}

	var write func(io.Writer) error
	switch kind {
	case "lots":
		write = func(w io.Writer) error { return export.WriteLotsCSV(w, snap.Lots) }
	case "temperatures":
		write = func(w io.Writer) error { return export.WriteTemperaturesCSV(w, snap.Temperatures) }
	case "json":
		write = func(w io.Writer) error { return export.WriteJSON(w, snap) }
	}
	return path, writeFile(path, write)
}

// writeFile creates path and fills it with write. A failed write leaves no file behind.
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	return file.Close()
}

func remindCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run one reminder check and print the missing temperature slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load(cmd)
			if err != nil {
				return err
			}
			st := reminder.NewChecker(e.app, e.notifier).Check(cmd.Context())

			out := cmd.OutOrStdout()
			if len(st.Pending) == 0 {
				_, err := fmt.Fprintln(out, "All temperature readings are up to date.")
				return err
			}
			for _, r := range st.Pending {
				fmt.Fprintf(out, "%s %s reading missing (due %s)\n", r.Date, r.Slot, r.At)
			}
			if !st.Supported {
				fmt.Fprintln(out, reminder.ErrUnsupported.Error())
			}
			return nil
		},
	}
}
