package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/cf-empty-email/internal/apply"
	"github.com/lite-lake/cf-empty-email/internal/config"
	"github.com/lite-lake/cf-empty-email/internal/domain"
	"github.com/lite-lake/cf-empty-email/internal/domain/service"
	"github.com/lite-lake/cf-empty-email/internal/infrastructure/dns"
	"github.com/lite-lake/cf-empty-email/internal/infrastructure/logger"
)

var (
	printOnly    bool
	forceRecords bool
	autoApprove  bool
	verbosity    int
	outputFormat string
	showVersion  bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cf-empty-email [CF_ZONE]",
	Short: "Add empty email DNS records for a Cloudflare zone",
	Long: `Add empty email DNS records for a Cloudflare zone.

Configures the zone with SPF, DKIM, DMARC and null MX records that signal
the domain sends no email. If no zone name is given, the zones available to
the credentials are listed instead.

Credentials are read from the environment: CF_API_TOKEN, or CF_API_KEY
together with CF_API_EMAIL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
		logger.SetVerbosity(verbosity)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		zoneName := ""
		if len(args) > 0 {
			zoneName = args[0]
		}
		return run(cmd.Context(), zoneName)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Only print the planned changes for the zone")
	rootCmd.Flags().BoolVarP(&forceRecords, "force", "f", false, "Overwrite records if they already exist")
	rootCmd.Flags().BoolVar(&autoApprove, "auto-approve", false, "Skip the overwrite confirmation prompt")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "Repeat for extra verbosity")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Report format (text/yaml)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Show the version and exit")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, zoneName string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	provider := dns.NewCloudflareProvider(cfg.APIToken, cfg.APIKey, cfg.APIEmail)
	resolver := service.NewZoneResolver(provider)

	zone, err := resolver.Resolve(ctx, zoneName)
	if err != nil {
		var notFound *service.ZoneNotFoundError
		switch {
		case errors.Is(err, domain.ErrNoZoneSpecified):
			zones, listErr := resolver.Available(ctx)
			if listErr != nil {
				return listErr
			}
			printZoneListing(os.Stdout, zones, cfg.APIEmail)
			return err
		case errors.As(err, &notFound):
			fmt.Fprintf(os.Stdout, "Zone %s not found.\n", notFound.Name)
			printZoneListing(os.Stdout, notFound.Available, cfg.APIEmail)
			return err
		}
		return err
	}
	logger.Debug("zone resolved", "zone", zone.Name, "zone_id", zone.ID)

	existing, err := provider.ListRecords(ctx, zone.ID)
	if err != nil {
		return err
	}

	desired := service.EmptyEmailTemplate(zone.Name)
	plan := service.Reconcile(zone, desired, existing, forceRecords)

	if printOnly {
		return renderPlan(os.Stdout, outputFormat, plan, existing)
	}

	if n := plan.Overwrites(); n > 0 && !autoApprove {
		if !Confirm(fmt.Sprintf("Overwrite %d existing record(s) in zone %s?", n, zone.Name), false) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	executor := apply.NewExecutor(provider)
	results := executor.Apply(ctx, plan)

	if err := renderResults(os.Stdout, outputFormat, plan, results); err != nil {
		return err
	}

	if n := apply.Failed(results); n > 0 {
		return fmt.Errorf("%d record(s) failed to apply", n)
	}
	return nil
}
