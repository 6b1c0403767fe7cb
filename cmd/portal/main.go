// portal is the command-line front door to the onboarding backend. It keeps
// a signed-in session in a local database, so one login carries across
// invocations until logout or expiry.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/onboardhq/onboardhub/internal/portal/access"
	"github.com/onboardhq/onboardhub/internal/portal/app"
	"github.com/onboardhq/onboardhub/internal/portal/auth"
	"github.com/onboardhq/onboardhub/pkg/onboardsdk"
	"github.com/onboardhq/onboardhub/pkg/slogx"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("portal", pflag.ContinueOnError)
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) == 0 {
		printHelp(flagSet)
		return errors.New("a command is required")
	}

	// The route table is static configuration; printing it needs no
	// backend or session database.
	if args[0] == "routes" {
		return cmdRoutes()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx = slogx.WithContext(ctx, application.Logger())

	switch args[0] {
	case "login":
		return cmdLogin(ctx, application, args[1:])
	case "logout":
		return application.Gateway.Logout(ctx)
	case "register":
		return cmdRegister(ctx, application, args[1:])
	case "whoami":
		return cmdWhoami(application)
	case "change-password":
		return cmdChangePassword(ctx, application, args[1:])
	case "open":
		return cmdOpen(application, args[1:])
	default:
		printHelp(flagSet)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdLogin(ctx context.Context, application *app.Application, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: portal login EMAIL PASSWORD")
	}

	identity, err := application.Gateway.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("signed in as %s %s (%s)\n", identity.FirstName, identity.LastName, identity.Role)
	if application.Sessions.MustChangePassword() {
		fmt.Println("your password must be changed before you can continue:")
		fmt.Println("  portal change-password CURRENT NEW CONFIRM")
	}
	return nil
}

func cmdRegister(ctx context.Context, application *app.Application, args []string) error {
	if len(args) != 4 {
		return errors.New("usage: portal register EMAIL PASSWORD FIRST LAST")
	}

	identity, err := application.Gateway.Register(ctx, onboardsdk.RegisterRequest{
		Email:     args[0],
		Password:  args[1],
		FirstName: args[2],
		LastName:  args[3],
		Role:      onboardsdk.RoleEmployee,
	})
	if err != nil {
		return err
	}

	fmt.Printf("registered and signed in as %s %s (%s)\n",
		identity.FirstName, identity.LastName, identity.Role)
	return nil
}

func cmdWhoami(application *app.Application) error {
	identity := application.Sessions.Current()
	if identity == nil || !application.Sessions.IsAuthenticated() {
		fmt.Println("not signed in")
		return nil
	}

	fmt.Printf("%s %s <%s>\n", identity.FirstName, identity.LastName, identity.Email)
	fmt.Printf("role: %s\n", identity.Role)
	if application.Sessions.MustChangePassword() {
		fmt.Println("a password change is required")
	}
	return nil
}

func cmdChangePassword(ctx context.Context, application *app.Application, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: portal change-password CURRENT NEW CONFIRM")
	}

	if err := application.Gateway.ChangePassword(ctx, args[0], args[1], args[2]); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return errors.New("new password and confirmation do not match")
		}
		return err
	}

	fmt.Println("password changed")
	return nil
}

// cmdOpen answers whether the signed-in user may visit a path, printing the
// redirect that a denial would produce.
func cmdOpen(application *app.Application, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: portal open PATH")
	}

	decision := application.Gate.Evaluate(args[0])
	switch {
	case decision.Allowed && decision.ForcePasswordChange:
		fmt.Printf("%s: allowed, but a password change is required first\n", args[0])
	case decision.Allowed:
		fmt.Printf("%s: allowed\n", args[0])
	default:
		fmt.Printf("%s: redirected to %s\n", args[0], decision.RedirectTo)
	}
	return nil
}

// cmdRoutes prints the navigable route table with each path's requirement.
func cmdRoutes() error {
	for _, info := range access.Table() {
		switch {
		case info.Requirement.AnonymousOnly:
			fmt.Printf("%-28s anonymous only\n", info.Pattern)
		case len(info.Requirement.Roles) == 0:
			fmt.Printf("%-28s any signed-in user\n", info.Pattern)
		default:
			names := make([]string, 0, len(info.Requirement.Roles))
			for _, role := range info.Requirement.Roles {
				names = append(names, role.String())
			}
			fmt.Printf("%-28s %s\n", info.Pattern, strings.Join(names, ", "))
		}
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `portal - onboarding backend client

usage: portal [flags] COMMAND [args]

commands:
  login EMAIL PASSWORD                sign in and persist the session
  logout                              drop the persisted session
  register EMAIL PASSWORD FIRST LAST  create an employee account
  whoami                              show the signed-in identity
  change-password CURRENT NEW CONFIRM rotate the password
  open PATH                           check whether a path is reachable
  routes                              print the route table

environment:
  ONBOARD_API_URL       backend base URL (required)
  ONBOARD_SESSION_FILE  session database path (default onboardhub.db)
  LOG_LEVEL, LOG_FORMAT logging controls

flags:
%s`, flagSet.FlagUsages())
}
