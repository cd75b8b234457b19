package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	inviteModel "venuely/internal/domains/invite/model"
	inviteDto "venuely/internal/domains/invite/model/dto"
	"venuely/internal/session"

	"github.com/urfave/cli/v2"
)

// Console wires the session Resolver to the API for the console commands.
type Console struct {
	api      *API
	resolver *session.Resolver
}

func NewConsole(api *API, resolver *session.Resolver) *Console {
	return &Console{
		api:      api,
		resolver: resolver,
	}
}

func (c *Console) App(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "venuely",
		Usage:  "work with venuely invites from the terminal",
		Writer: out,
		// Errors go back to the caller instead of exiting the process.
		ExitErrHandler: func(*cli.Context, error) {},
		Before: func(ctx *cli.Context) error {
			c.resolver.Bootstrap(ctx.Context)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "name", Required: true, Usage: "full name"},
					&cli.StringFlag{Name: "role", Value: session.RoleUser.String(), Usage: "user or organizer"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "address"},
				},
				Action: c.signUp,
			},
			{
				Name:  "signin",
				Usage: "sign in and keep the session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: c.signIn,
			},
			{
				Name:   "signout",
				Usage:  "revoke and forget the stored session",
				Action: c.signOut,
			},
			{
				Name:   "whoami",
				Usage:  "show the signed in account and role",
				Action: c.whoAmI,
			},
			{
				Name:   "invites",
				Usage:  "list invites received for your events",
				Action: c.invites,
			},
			{
				Name:      "accept",
				Usage:     "accept an invite",
				ArgsUsage: "<invite-id>",
				Action:    c.act(inviteModel.StatusAccepted),
			},
			{
				Name:      "reject",
				Usage:     "reject an invite",
				ArgsUsage: "<invite-id>",
				Action:    c.act(inviteModel.StatusRejected),
			},
			{
				Name:      "send-invite",
				Usage:     "invite an event to one of your hotels",
				ArgsUsage: "<event-id> [hotel-id]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "message"},
				},
				Action: c.sendInvite,
			},
		},
	}
}

func (c *Console) signUp(ctx *cli.Context) error {
	role := session.Role(ctx.String("role"))
	if !role.Valid() {
		return cli.Exit("role must be user or organizer", 1)
	}

	res, err := c.resolver.SignUp(ctx.Context, ctx.String("email"), ctx.String("password"), session.ProfileMetadata{
		FullName: ctx.String("name"),
		Phone:    ctx.String("phone"),
		Address:  ctx.String("address"),
		Role:     role,
	})
	if err != nil {
		return cli.Exit("sign up failed: "+err.Error(), 1)
	}

	if res.ConfirmationRequired {
		fmt.Fprintln(ctx.App.Writer, "Check your email to confirm the account, then sign in.")

		return nil
	}

	fmt.Fprintf(ctx.App.Writer, "Signed up as %s (%s)\n", res.Account.Email, c.resolver.State().Role)

	return nil
}

func (c *Console) signIn(ctx *cli.Context) error {
	if err := c.resolver.SignIn(ctx.Context, ctx.String("email"), ctx.String("password")); err != nil {
		return cli.Exit("sign in failed: "+err.Error(), 1)
	}

	state := c.resolver.State()
	fmt.Fprintf(ctx.App.Writer, "Signed in as %s (%s)\n", state.Account.Email, state.Role)

	return nil
}

func (c *Console) signOut(ctx *cli.Context) error {
	if err := c.resolver.SignOut(ctx.Context); err != nil {
		fmt.Fprintln(ctx.App.Writer, "Signed out locally; the server could not revoke the session: "+err.Error())

		return nil
	}

	fmt.Fprintln(ctx.App.Writer, "Signed out")

	return nil
}

func (c *Console) whoAmI(ctx *cli.Context) error {
	state := c.resolver.State()
	if !state.Authenticated() {
		fmt.Fprintln(ctx.App.Writer, "Not signed in")

		return nil
	}

	fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%s\n", state.Account.ID, state.Account.Email, state.Role)

	return nil
}

func (c *Console) invites(ctx *cli.Context) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	invites, err := c.api.ReceivedInvites(ctx.Context, token)
	if err != nil {
		return c.report(ctx, err)
	}

	if len(invites) == 0 {
		fmt.Fprintln(ctx.App.Writer, "No invites yet")

		return nil
	}

	table := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tSTATUS\tEVENT\tHOTEL\tCITY")

	for _, invite := range invites {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n", invite.ID, invite.Status, invite.Event.EventName, invite.Hotel.Name, invite.Hotel.City)
	}

	return table.Flush()
}

func (c *Console) act(action string) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if ctx.Args().Len() != 1 {
			return cli.Exit("usage: "+ctx.Command.Name+" <invite-id>", 1)
		}

		token, err := c.token()
		if err != nil {
			return err
		}

		res, err := c.api.ActOnInvite(ctx.Context, token, ctx.Args().First(), action)
		if err != nil {
			return c.report(ctx, err)
		}

		fmt.Fprintf(ctx.App.Writer, "Invite %s %s\n", res.InviteID, res.Status)

		if res.ChatAvailable && res.ChatID != nil {
			fmt.Fprintf(ctx.App.Writer, "Chat %s is open\n", *res.ChatID)
		}

		return nil
	}
}

func (c *Console) sendInvite(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 || ctx.Args().Len() > 2 {
		return cli.Exit("usage: send-invite <event-id> [hotel-id]", 1)
	}

	token, err := c.token()
	if err != nil {
		return err
	}

	res, err := c.api.SendInvite(ctx.Context, token, inviteDto.SendInviteRequest{
		EventID: ctx.Args().Get(0),
		HotelID: ctx.Args().Get(1),
		Message: ctx.String("message"),
	})
	if err != nil {
		return c.report(ctx, err)
	}

	fmt.Fprintf(ctx.App.Writer, "Invite %s sent (%s)\n", res.ID, res.Status)

	return nil
}

func (c *Console) token() (string, error) {
	state := c.resolver.State()
	if !state.Authenticated() {
		return "", cli.Exit("not signed in; run signin first", 1)
	}

	return state.Session.AccessToken, nil
}

// report prints role mismatches and business rule rejections as messages. Anything else fails
// the command.
func (c *Console) report(ctx *cli.Context, err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return cli.Exit(err.Error(), 1)
	}

	switch apiErr.Status {
	case http.StatusForbidden:
		fmt.Fprintf(ctx.App.Writer, "Your %s account cannot do this: %s\n", c.resolver.State().Role, apiErr.Message)

		return nil
	case http.StatusConflict, http.StatusUnprocessableEntity, http.StatusNotFound, http.StatusBadRequest:
		fmt.Fprintln(ctx.App.Writer, apiErr.Message)

		return nil
	case http.StatusUnauthorized:
		return cli.Exit("session expired; run signin again", 1)
	}

	return cli.Exit(apiErr.Error(), 1)
}

// Run builds the console from the environment and executes args.
func Run(ctx context.Context, out io.Writer, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	api := NewAPI(cfg)
	store := NewFileStore(cfg.SessionFile)
	provider := NewProvider(api, store)
	roles := session.NewRoleResolverWithTimeout(NewRoleSource(api, store), session.DefaultRoleTimeout)

	resolver := session.New(provider, roles, cfg.SiteURL+"/verify-email")
	defer resolver.Close()

	return NewConsole(api, resolver).App(out).RunContext(ctx, args)
}
