package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/liars-pub/database"
	"github.com/ratel-online/liars-pub/liar"
	"github.com/ratel-online/liars-pub/network"
	"github.com/ratel-online/liars-pub/notify"
	"github.com/ratel-online/liars-pub/ui"
	"github.com/spf13/cobra"
)

var defaultPlayers = []string{"Player1", "Player2", "Player3", "Player4"}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	_ = godotenv.Load()
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func newPlayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play [names...]",
		Short: "Play a game on this terminal, passing the keyboard around",
		Args:  cobra.MaximumNArgs(liar.DeckSize / liar.HandSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = defaultPlayers
			}
			if cfg.verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "players: %s, rules: %s, seed: %d\n", strings.Join(names, ", "), cfg.rules, cfg.seed)
			}
			driver := &ui.Driver{
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
				Names:   names,
				Options: cfg.options(),
			}
			_, err := driver.Run()
			if err == io.EOF {
				return nil
			}
			return err
		},
	}
}

func newServeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Host rooms for terminal clients over tcp and websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database.Configure(cfg.rules, cfg.seed)
			stop := make(chan struct{})
			defer close(stop)
			database.Sweep(time.Minute, stop)
			if cfg.verbose {
				log.Infof("rules: %s, seed: %d\n", cfg.rules, cfg.seed)
			}
			if cfg.wsAddr != "" {
				async.Async(func() {
					log.Error(network.NewWebsocketServer(cfg.wsAddr).Serve())
				})
			}
			return network.NewTcpServer(cfg.tcpAddr).Serve()
		},
	}
}

func newNotifyCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "notify [message]",
		Short: "Bounce a notification window around the terminal until Ctrl+C",
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := notifyWindow(cmd.InOrStdin(), cmd.OutOrStdout(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			r, err := liar.NewRand(cfg.seed)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return notify.Run(ctx, cmd.OutOrStdout(), window, notify.Options{Rand: r})
		},
	}
}

// notifyWindow builds the window from message, or asks for one until it fits.
func notifyWindow(in io.Reader, out io.Writer, message string) (notify.Window, error) {
	if message != "" {
		return notify.NewWindow(message)
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "What notification would you like to see? ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return notify.Window{}, err
			}
			return notify.Window{}, io.EOF
		}
		window, err := notify.NewWindow(strings.TrimSpace(scanner.Text()))
		if err == nil {
			return window, nil
		}
		fmt.Fprintln(out, "Notification too long! Please keep it under 87 characters.")
	}
}

