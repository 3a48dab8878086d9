package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"monitoring/config"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - publish: Publish one device lifecycle event through the configured provider
// - token:   Issue an access token for the HTTP API
// - migrate: Create or update the database schema

func main() {
	publishCmd := flag.NewFlagSet("publish", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	// publish parameters
	publishIntent := publishCmd.String("intent", "register", "Lifecycle intent (register, update, delete)")
	publishID := publishCmd.String("id", "", "Device ID")
	publishOwner := publishCmd.String("owner", "", "Owner ID")
	publishMax := publishCmd.String("max", "0", "Maximum hourly consumption")
	publishRaw := publishCmd.String("raw", "", "Publish this text as-is instead of building a message")
	publishRequestID := publishCmd.String("request-id", "", "Request ID attribute")

	// token parameters
	tokenUser := tokenCmd.String("user", "", "User ID (subject)")
	tokenRoles := tokenCmd.String("roles", "user", "Comma-separated roles (user, admin)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := ctlFlags{
		Publish: publishFlags{
			cmd:       publishCmd,
			intent:    publishIntent,
			id:        publishID,
			owner:     publishOwner,
			max:       publishMax,
			raw:       publishRaw,
			requestID: publishRequestID,
		},
		Token: tokenFlags{
			cmd:   tokenCmd,
			user:  tokenUser,
			roles: tokenRoles,
		},
		Migrate: migrateCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Publish publishFlags
	Token   tokenFlags
	Migrate *flag.FlagSet
}

type publishFlags struct {
	cmd       *flag.FlagSet
	intent    *string
	id        *string
	owner     *string
	max       *string
	raw       *string
	requestID *string
}

type tokenFlags struct {
	cmd   *flag.FlagSet
	user  *string
	roles *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "publish":
		return handlePublish(ctx, flags)
	case "token":
		return handleToken(flags)
	case "migrate":
		return handleMigrate(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handlePublish(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Publish.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse publish flags")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	return runPublish(ctx, cfg, newLogger(), publishInput{
		intent:    *flags.Publish.intent,
		id:        *flags.Publish.id,
		owner:     *flags.Publish.owner,
		max:       *flags.Publish.max,
		raw:       *flags.Publish.raw,
		requestID: *flags.Publish.requestID,
	})
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.user == "" {
		return errors.New("--user flag is required for token command")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	token, err := runToken(cfg, *flags.Token.user, *flags.Token.roles)
	if err != nil {
		return err
	}
	fmt.Println(token)

	return nil
}

func handleMigrate(flags *ctlFlags) error {
	if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	return runMigrate(cfg, newLogger())
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func printUsage() {
	fmt.Println("Usage: devicectl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  publish    Publish a device lifecycle event")
	fmt.Println("  token      Issue an API access token")
	fmt.Println("  migrate    Create or update the database schema")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  devicectl publish --intent register --id <uuid> --owner <uuid> --max 5")
	fmt.Println("  devicectl publish --intent delete --raw '{\"type\":\"delete\",\"id\":\"<uuid>\"}'")
	fmt.Println("  devicectl token --user <uuid> --roles user,admin")
}
