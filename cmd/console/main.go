// Command console is a terminal shell over the admin console SDK: it signs
// in, resolves a navigation attempt through the guard, and prints the
// outcome. Useful for poking at a deployment without the web frontend.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cordalabs/adminsdk/internal/console"
	"github.com/cordalabs/adminsdk/pkg/adminsdk"
	"github.com/cordalabs/adminsdk/pkg/routing"
)

func main() {
	username := flag.String("username", "", "sign in as this user")
	password := flag.String("password", "", "password for -username")
	routeName := flag.String("route", console.RouteCompanyList, "route to navigate to")
	logout := flag.Bool("logout", false, "log out before exiting")
	flag.Parse()

	cfg := console.LoadConfig()
	app, err := console.New(cfg, adminsdk.WithNotifier(&terminalNotifier{}))
	if err != nil {
		log.Fatalf("failed to initialize console: %v", err)
	}
	defer app.Close()

	ctx := context.Background()

	if *username != "" {
		if err := app.Session.Login(ctx, *username, *password); err != nil {
			log.Fatalf("login failed: %v", err)
		}
	} else if err := app.Session.FetchInfo(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "no usable session, sign in with -username/-password")
		os.Exit(1)
	}

	info := app.Session.Info()
	fmt.Printf("signed in as %s (role %s)\n", info.Name, info.Role)

	if tok, err := app.Client.Credentials().Get(ctx); err == nil && tok != "" {
		if exp, ok := adminsdk.Expiry(tok); ok {
			fmt.Printf("token expires %s\n", exp.Format(time.RFC3339))
		}
	}

	table := append(console.AppRoutes(), console.WhiteList()...)
	to, ok := routing.Find(table, *routeName)
	if !ok {
		log.Fatalf("unknown route %q", *routeName)
	}

	decision, err := app.Guard.Resolve(ctx, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "menu fetch failed: %v\n", err)
	}
	switch decision.Action {
	case routing.ActionProceed:
		fmt.Printf("navigation to %s allowed\n", to.Name)
	case routing.ActionRedirect:
		fmt.Printf("navigation to %s redirected to %s\n", to.Name, decision.Target)
	}

	if *logout {
		if err := app.Session.Logout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "remote logout failed (session torn down anyway): %v\n", err)
		}
	}
}

// terminalNotifier renders notices on stderr and confirmations on stdin.
type terminalNotifier struct{}

func (*terminalNotifier) Error(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
}

func (*terminalNotifier) ConfirmLogout(title, content string) bool {
	fmt.Fprintf(os.Stderr, "%s: %s [y/N] ", title, content)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
