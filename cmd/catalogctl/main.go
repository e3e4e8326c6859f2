package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - token: Issue a bearer token for the admin endpoints
// - sync:  Run one sync cycle against the configured remote
// - show:  Print the stored snapshot of a tenant
// - clear: Reset a tenant's stored snapshot

func main() {
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	syncCmd := flag.NewFlagSet("sync", flag.ExitOnError)
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)

	// token parameters
	tokenSubject := tokenCmd.String("subject", "catalogctl", "Subject recorded in the token")
	tokenRole := tokenCmd.String("role", "admin", "Role granted by the token (admin, reader)")
	tokenTTL := tokenCmd.Duration("ttl", time.Hour, "Token lifetime")

	// sync parameters
	syncCompany := syncCmd.Int("company", 0, "Company ID (0 uses the configured company)")
	syncYear := syncCmd.Int("year", 0, "Fiscal year (0 uses the configured year)")

	// show parameters
	showCompany := showCmd.Int("company", 0, "Company ID (0 uses the configured company)")
	showFull := showCmd.Bool("full", false, "Print articles and categories instead of a summary")

	// clear parameters
	clearCompany := clearCmd.Int("company", 0, "Company ID (0 uses the configured company)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			role:    tokenRole,
			ttl:     tokenTTL,
		},
		Sync: syncFlags{
			cmd:     syncCmd,
			company: syncCompany,
			year:    syncYear,
		},
		Show: showFlags{
			cmd:     showCmd,
			company: showCompany,
			full:    showFull,
		},
		Clear: clearFlags{
			cmd:     clearCmd,
			company: clearCompany,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Token tokenFlags
	Sync  syncFlags
	Show  showFlags
	Clear clearFlags
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	role    *string
	ttl     *time.Duration
}

type syncFlags struct {
	cmd     *flag.FlagSet
	company *int
	year    *int
}

type showFlags struct {
	cmd     *flag.FlagSet
	company *int
	full    *bool
}

type clearFlags struct {
	cmd     *flag.FlagSet
	company *int
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "token":
		return handleToken(flags)
	case "sync":
		return handleSync(ctx, flags)
	case "show":
		return handleShow(ctx, flags)
	case "clear":
		return handleClear(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	return runToken(os.Stdout, *flags.Token.subject, *flags.Token.role, *flags.Token.ttl)
}

func handleSync(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Sync.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse sync flags")
	}

	return runSync(ctx, os.Stdout, *flags.Sync.company, *flags.Sync.year)
}

func handleShow(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Show.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse show flags")
	}

	return runShow(ctx, os.Stdout, *flags.Show.company, *flags.Show.full)
}

func handleClear(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Clear.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse clear flags")
	}

	return runClear(ctx, os.Stdout, *flags.Clear.company)
}

func printUsage() {
	fmt.Println("Usage: catalogctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  token    Issue a bearer token for the admin endpoints")
	fmt.Println("  sync     Run one catalog sync cycle")
	fmt.Println("  show     Print the stored snapshot of a tenant")
	fmt.Println("  clear    Reset a tenant's stored snapshot")
	fmt.Println("")
	fmt.Println("Use 'catalogctl <command> -h' for more information about a command.")
}
