// ksoftctl is a small command line front end for the KSoft.Si API.
//
// It supports one-shot ban lookups and a watch mode that follows the ban
// update feed:
//
//	ksoftctl -config ksoftctl.yaml check 492406165443674062
//	ksoftctl -config ksoftctl.yaml info 492406165443674062
//	ksoftctl -config ksoftctl.yaml watch
//
// The API key is read from the config file (api.key) or the KSOFT_API_KEY
// environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	ksoft "github.com/ksoft-si/ksoftgo"
)

// signalHost adapts process signals to the [ksoft.Host] interface so the
// watch command can drive the ban updater. It is ready immediately and
// done once the process receives SIGINT or SIGTERM.
type signalHost struct {
	ready chan struct{}
	done  chan struct{}
}

func newSignalHost() *signalHost {
	h := &signalHost{
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
	close(h.ready)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		close(h.done)
	}()

	return h
}

func (h *signalHost) Ready() <-chan struct{} { return h.ready }
func (h *signalHost) Done() <-chan struct{}  { return h.done }

// loadConfig reads the ksoftctl configuration.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("api.poll_interval", 300)
	v.SetDefault("api.timeout", 10)
	v.SetDefault("log.directory", "logs")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", true)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("KSOFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return v, nil
	}

	v.SetConfigName("ksoftctl")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Running on environment variables alone is fine.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

// setupLogger routes zerolog to the console and a rotating log file.
func setupLogger(v *viper.Viper) error {
	logDir := v.GetString("log.directory")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	rotating := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "ksoftctl.log"),
		MaxSize:    v.GetInt("log.max_size"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAge:     v.GetInt("log.max_age"),
		Compress:   v.GetBool("log.compress"),
	}

	writer := io.MultiWriter(
		zerolog.ConsoleWriter{Out: os.Stderr},
		rotating,
	)
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()

	if v.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return nil
}

func clientConfig(v *viper.Viper) *ksoft.Config {
	return &ksoft.Config{
		APIKey:       v.GetString("api.key"),
		BaseURL:      v.GetString("api.base_url"),
		Timeout:      v.GetInt("api.timeout"),
		PollInterval: v.GetInt("api.poll_interval"),
		Debug:        v.GetBool("debug"),
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ksoftctl [-config FILE] <check|info|watch> [user id]")
}

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	v, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = setupLogger(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err = run(v, args); err != nil {
		log.Error().Err(err).Msg("Command failed.")
		os.Exit(1)
	}
}

func run(v *viper.Viper, args []string) error {
	ctx := context.Background()

	switch args[0] {
	case "check":
		userID, err := userIDArg(args)
		if err != nil {
			return err
		}
		client, err := ksoft.New(clientConfig(v))
		if err != nil {
			return err
		}
		banned, err := client.Bans().Check(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Printf("%d banned: %t\n", userID, banned)
		return nil

	case "info":
		userID, err := userIDArg(args)
		if err != nil {
			return err
		}
		client, err := ksoft.New(clientConfig(v))
		if err != nil {
			return err
		}
		info, err := client.Bans().Info(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Printf("user:      %d (%s#%s)\n", info.User, info.Name, info.Discriminator)
		fmt.Printf("active:    %t\n", info.IsBanActive)
		fmt.Printf("reason:    %s\n", info.Reason)
		fmt.Printf("proof:     %s\n", info.Proof)
		fmt.Printf("moderator: %d\n", info.Moderator)
		fmt.Printf("issued:    %s\n", info.Timestamp.Time())
		return nil

	case "watch":
		return watch(ctx, v)

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func userIDArg(args []string) (int64, error) {
	if len(args) < 2 {
		usage()
		return 0, errors.New("user id is required")
	}
	return strconv.ParseInt(args[1], 10, 64)
}

// watch follows the ban update feed until the process is interrupted.
func watch(ctx context.Context, v *viper.Viper) error {
	host := newSignalHost()

	client, err := ksoft.Pluggable(host, clientConfig(v))
	if err != nil {
		return err
	}

	client.RegisterBanHook(func(event *ksoft.Event) {
		log.Info().
			Str("Event", event.Type.String()).
			Int64("User", event.Ban.User).
			Int64("Moderator", event.Ban.Moderator).
			Str("Reason", event.Ban.Reason).
			Msg("Ban list update.")
	})

	if err = client.Start(ctx); err != nil {
		return err
	}
	defer client.Stop()

	log.Info().Msg("Watching the ban update feed, CTRL+C to stop.")
	<-host.Done()

	return nil
}
