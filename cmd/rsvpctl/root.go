package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/doramarin/wedding-rsvp/internal/client"
)

// env supplies flag defaults.
type env struct {
	BaseURL  string        `env:"RSVP_BASE_URL, default=http://localhost:8080"`
	Username string        `env:"RSVP_USERNAME"`
	Password string        `env:"RSVP_PASSWORD"`
	Timeout  time.Duration `env:"RSVP_TIMEOUT, default=10s"`
}

type app struct {
	in  *bufio.Reader
	out io.Writer

	baseURL  string
	username string
	password string
	timeout  time.Duration
	yes      bool
}

func newRootCmd(in io.Reader, out io.Writer) (*cobra.Command, error) {
	var defaults env
	if err := envconfig.Process(context.Background(), &defaults); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	a := &app{in: bufio.NewReader(in), out: out}

	root := &cobra.Command{
		Use:           "rsvpctl",
		Short:         "Wedding RSVP client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.SetErr(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.baseURL, "url", defaults.BaseURL, "API base URL (RSVP_BASE_URL)")
	pf.StringVarP(&a.username, "username", "u", defaults.Username, "account username (RSVP_USERNAME)")
	pf.StringVarP(&a.password, "password", "p", defaults.Password, "account password (RSVP_PASSWORD)")
	pf.DurationVar(&a.timeout, "timeout", defaults.Timeout, "per-request timeout (RSVP_TIMEOUT)")

	root.AddCommand(
		a.viewCmd(),
		a.respondCmd(),
		a.commentCmd(),
		a.adminCmd(),
	)
	return root, nil
}

// login returns a client holding a fresh session for the configured account.
func (a *app) login(ctx context.Context) (*client.Client, *client.LoginResult, error) {
	if a.username == "" || a.password == "" {
		return nil, nil, fmt.Errorf("username and password are required (--username/--password or RSVP_USERNAME/RSVP_PASSWORD)")
	}
	c := client.New(client.Config{BaseURL: a.baseURL, Timeout: a.timeout})
	res, err := c.Login(ctx, a.username, a.password)
	if err != nil {
		return nil, nil, err
	}
	return c, res, nil
}

// confirm asks before a destructive action unless --yes was given.
func (a *app) confirm(prompt string) bool {
	if a.yes {
		return true
	}
	fmt.Fprintf(a.out, "%s [y/N]: ", prompt)
	line, _ := a.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
