package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show your invited persons and their responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, _, err := a.login(ctx)
			if err != nil {
				return err
			}
			state, err := c.LoadGuestState(ctx, a.username, nil)
			if err != nil {
				return err
			}

			if state.Account.Message != "" {
				fmt.Fprintf(a.out, "%s\n\n", state.Account.Message)
			}
			printRecords(a, state.Records)
			if state.HasAccepted {
				fmt.Fprintln(a.out, "\nYou can leave a message: rsvpctl comment \"...\"")
			}
			return nil
		},
	}
}

func (a *app) respondCmd() *cobra.Command {
	var edit recordEdit
	cmd := &cobra.Command{
		Use:   "respond",
		Short: "Answer for one invited person and save all responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, _, err := a.login(ctx)
			if err != nil {
				return err
			}
			state, err := c.LoadGuestState(ctx, a.username, nil)
			if err != nil {
				return err
			}

			edit.setAccept = cmd.Flags().Changed("accept")
			edit.setMenu = cmd.Flags().Changed("menu")
			edit.setAllergies = cmd.Flags().Changed("allergies")
			edit.setComment = cmd.Flags().Changed("comment")
			if err := edit.apply(state.Records); err != nil {
				return err
			}

			res, err := c.SaveAll(ctx, state)
			if res != nil {
				for _, it := range res.Results {
					status := "saved"
					if !it.OK {
						status = "failed: " + it.Error
					}
					fmt.Fprintf(a.out, "%s: %s\n", it.NameSurname, status)
				}
			}
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&edit.person, "person", "", "exact name of the invited person")
	f.StringVar(&edit.accept, "accept", "", "yes, no or unset")
	f.StringVar(&edit.menu, "menu", "", "fish or meat")
	f.StringVar(&edit.allergies, "allergies", "", "allergies")
	f.StringVar(&edit.comment, "comment", "", "note for this person")
	_ = cmd.MarkFlagRequired("person")
	return cmd
}

func (a *app) commentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment TEXT",
		Short: "Leave a message for the couple",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, _, err := a.login(ctx)
			if err != nil {
				return err
			}
			if _, err := c.AddComment(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Message saved.")
			return nil
		},
	}
}

// recordEdit changes one record of a reconciled set. Only flags that were
// set are applied.
type recordEdit struct {
	person    string
	accept    string
	menu      string
	allergies string
	comment   string

	setAccept    bool
	setMenu      bool
	setAllergies bool
	setComment   bool
}

func (e recordEdit) apply(records []domain.RSVPResponse) error {
	for i := range records {
		if records[i].NameSurname != e.person {
			continue
		}
		r := &records[i]
		if e.setAccept {
			switch strings.ToLower(e.accept) {
			case "yes", "true":
				v := true
				r.Accepted = &v
			case "no", "false":
				v := false
				r.Accepted = &v
			case "unset", "":
				r.Accepted = nil
			default:
				return fmt.Errorf("%w: accept must be yes, no or unset", domain.ErrValidation)
			}
		}
		if e.setMenu {
			r.MenuOption = domain.MenuOption(e.menu)
		}
		if e.setAllergies {
			r.Allergies = e.allergies
		}
		if e.setComment {
			r.Comment = e.comment
		}
		return r.Validate()
	}
	return fmt.Errorf("%w: %q", domain.ErrPersonNotFound, e.person)
}

func printRecords(a *app, records []domain.RSVPResponse) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tATTENDING\tMENU\tALLERGIES\tCOMMENT")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.NameSurname, attending(r), r.MenuOption, r.Allergies, r.Comment)
	}
	_ = tw.Flush()
}

func attending(r domain.RSVPResponse) string {
	switch {
	case r.IsAccepted():
		return "yes"
	case r.IsDeclined():
		return "no"
	}
	return "-"
}
