package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/fentz26/taskmemo/internal/store"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recorded actions from the audit journal",
	RunE:  runAudit,
}

var (
	auditLimit    int
	auditAllUsers bool
)

func init() {
	auditCmd.Flags().IntVar(&auditLimit, "limit", 50, "Maximum number of records (0 for all)")
	auditCmd.Flags().BoolVar(&auditAllUsers, "all-users", false, "Show records of every user")
}

func runAudit(cmd *cobra.Command, args []string) error {
	if !cfg.AuditEnabled() {
		return errors.New("no audit database configured (use --audit-db or audit_db in the config file)")
	}

	s, err := store.New(cfg.AuditDB)
	if err != nil {
		return err
	}
	defer s.Close()

	filter := cfg.Username
	if auditAllUsers {
		filter = ""
	}
	recs, err := s.ListActions(filter, auditLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No actions recorded")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tUSER\tACTION\tOUTCOME\tDETAILS")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Username,
			r.Action,
			r.Outcome,
			truncate(r.Details, 40))
	}
	return w.Flush()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
