package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doramarin/wedding-rsvp/internal/client"
	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

func (a *app) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Account, roster and overview administration",
	}
	cmd.PersistentFlags().BoolVarP(&a.yes, "yes", "y", false, "do not ask before deleting")
	cmd.AddCommand(a.accountsCmd(), a.personsCmd(), a.summaryCmd(), a.activityCmd())
	return cmd
}

func (a *app) accountsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "accounts", Short: "Manage guest and admin accounts"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			accounts, err := c.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "USERNAME\tROLE\tMESSAGE")
			for _, acc := range accounts {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", acc.Username, acc.Role, acc.Message)
			}
			return tw.Flush()
		},
	})

	var in client.NewAccount
	create := &cobra.Command{
		Use:   "create USERNAME PASSWORD",
		Short: "Create an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			in.Username, in.Password = args[0], args[1]
			acc, err := c.CreateAccount(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created %s (%s)\n", acc.Username, acc.Role)
			return nil
		},
	}
	create.Flags().StringVar(&in.Role, "role", "", "guest (default) or admin")
	create.Flags().StringVar(&in.Message, "message", "", "personal message")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "message USERNAME TEXT",
		Short: "Set an account's personal message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			msg := strings.Join(args[1:], " ")
			if _, err := c.UpdateAccount(cmd.Context(), args[0], client.AccountUpdate{Message: &msg}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Message updated for %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete USERNAME",
		Short: "Delete an account with its persons, responses and comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.confirm(fmt.Sprintf("Delete account %s and everything it owns?", args[0])) {
				fmt.Fprintln(a.out, "Aborted.")
				return nil
			}
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.DeleteAccount(cmd.Context(), args[0], true); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func (a *app) personsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "persons", Short: "Manage invited persons"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [USERNAME]",
		Short: "List invited persons, of one account or all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			var persons []domain.InvitedPerson
			if len(args) == 1 {
				persons, err = c.Persons(cmd.Context(), args[0])
			} else {
				persons, err = c.AllPersons(cmd.Context())
			}
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ACCOUNT\tNAME")
			for _, p := range persons {
				fmt.Fprintf(tw, "%s\t%s\n", p.Username, p.NameSurname)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add USERNAME NAME",
		Short: "Invite a person on an account",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			p, err := c.AddPerson(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(a.out, "Nothing to add.")
				return nil
			}
			fmt.Fprintf(a.out, "Added %s to %s\n", p.NameSurname, p.Username)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete USERNAME NAME",
		Short: "Remove an invited person and their response",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			if !a.confirm(fmt.Sprintf("Remove %s from %s?", name, args[0])) {
				fmt.Fprintln(a.out, "Aborted.")
				return nil
			}
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.DeletePerson(cmd.Context(), args[0], name, true); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Removed %s\n", name)
			return nil
		},
	})
	return cmd
}

func (a *app) summaryCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Responses and messages grouped by account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			sum, err := c.Summary(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			for _, g := range sum.Accounts {
				fmt.Fprintf(a.out, "== %s\n", g.Username)
				printRecords(a, g.Responses)
				for _, cm := range g.Comments {
					fmt.Fprintf(a.out, "  > %s\n", cm.Text)
				}
				fmt.Fprintln(a.out)
			}
			t := sum.Totals
			fmt.Fprintf(a.out, "accepted %d  declined %d  pending %d  fish %d  meat %d\n",
				t.Accepted, t.Declined, t.Pending, t.Fish, t.Meat)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (a *app) activityCmd() *cobra.Command {
	var (
		username string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Recent activity, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := c.Activity(cmd.Context(), username, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tACCOUNT\tACTOR\tKIND\tDETAIL")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.OccurredAt.Format("2006-01-02 15:04:05"), e.Username, e.Actor, e.Kind, e.Detail)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&username, "account", "", "only this account")
	cmd.Flags().IntVar(&limit, "limit", 0, "max entries")
	return cmd
}
