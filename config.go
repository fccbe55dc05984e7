package main

import (
	"fmt"
	"strings"

	"github.com/ratel-online/liars-pub/liar"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	challenge string
	refill    string
	seed      int64
	tcpAddr   string
	verbose   bool
	wsAddr    string

	rules liar.Rules
}

func (c *Config) validate() error {
	refill, err := liar.ParseRefillPolicy(c.refill)
	if err != nil {
		return fmt.Errorf("invalid --refill %q (want self, empty or table): %w", c.refill, err)
	}
	challenge, err := liar.ParseChallengeRule(c.challenge)
	if err != nil {
		return fmt.Errorf("invalid --challenge %q (want next or any): %w", c.challenge, err)
	}
	c.rules = liar.Rules{Refill: refill, Challenge: challenge}
	return nil
}

func (c *Config) options() []liar.Option {
	return []liar.Option{liar.WithRules(c.rules), liar.WithSeed(c.seed)}
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("LIARSPUB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "liars-pub",
		Short: "Liars Pub, a bluffing card game with a revolver, plus a bouncing notification window.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validate()
		},
	}

	fs := cmd.PersistentFlags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.challenge, "challenge", liar.ChallengeNext.String(), "who may challenge a declaration: next or any (env: LIARSPUB_CHALLENGE)")
	fs.StringVar(&cfg.refill, "refill", liar.RefillSelf.String(), "who is dealt new cards when a hand runs out: self, empty or table (env: LIARSPUB_REFILL)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for shuffles and the revolver, 0 for a random one (env: LIARSPUB_SEED)")
	fs.StringVar(&cfg.tcpAddr, "tcp-addr", ":9999", "address the tcp server listens on (env: LIARSPUB_TCP_ADDR)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: LIARSPUB_VERBOSE)")
	fs.StringVar(&cfg.wsAddr, "ws-addr", "", "address the websocket server listens on, empty to disable (env: LIARSPUB_WS_ADDR)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.AddCommand(newPlayCmd(cfg), newServeCmd(cfg), newNotifyCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
