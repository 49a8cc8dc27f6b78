package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vocdoni/neynar-go/api/hub"
	"github.com/vocdoni/neynar-go/api/neynar"
	v1 "github.com/vocdoni/neynar-go/api/v1"
	v2 "github.com/vocdoni/neynar-go/api/v2"
	"github.com/vocdoni/neynar-go/bot"
	"github.com/vocdoni/neynar-go/config"
	"github.com/vocdoni/neynar-go/internal/tracing"
	"go.vocdoni.io/dvote/log"
)

const usage = `usage: neynar [flags] <command> [args]

commands:
  user <fid>                  lookup a user by fid
  username <username>         lookup a user by username
  followers <fid> [cursor]    list the followers of a user
  cast <hash|url>             lookup a cast by hash or warpcast url
  feed <fid> [cursor]         list the following feed of a user
  publish <signer> <text>     publish a cast
  watch <reply>               reply to every new mention through the hub

flags:
`

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load, ignored if missing")
	logLevel := flag.String("logLevel", "", "log level, overrides LOG_LEVEL")
	traceExporter := flag.String("trace", "", "trace exporter (stdout, otlp), overrides NEYNAR_TRACE_EXPORTER")
	limit := flag.Int("limit", 25, "page size of list commands")
	coolDown := flag.Duration("cooldown", time.Second*30, "cooldown between mention checks")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error loading %s: %s\n", *envFile, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *traceExporter != "" {
		cfg.TraceExporter = *traceExporter
	}
	// init logger with the given log level
	log.Init(cfg.LogLevel, "stdout", nil)
	shutdownTracing, err := tracing.Init(context.Background(), cfg.TracingConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warnf("error stopping tracing: %s", err)
		}
	}()

	client, err := neynar.New(cfg.ClientConfig())
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if cmd == "watch" {
		if err := watch(ctx, cfg, *coolDown, args); err != nil {
			log.Fatal(err)
		}
		return
	}
	res, err := run(ctx, client, cmd, args, int32(*limit))
	if err != nil {
		log.Fatal(err)
	}
	if err := printJSON(res); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, client *neynar.Client, cmd string, args []string, limit int32) (any, error) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	var cursor *string
	switch cmd {
	case "user":
		fid, err := strconv.ParseUint(arg(0), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fid '%s': %w", arg(0), err)
		}
		return notFound(client.LookupUserByFID(ctx, fid, nil))
	case "username":
		return notFound(client.LookupUserByUsername(ctx, arg(0), nil))
	case "followers":
		fid, err := strconv.ParseUint(arg(0), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fid '%s': %w", arg(0), err)
		}
		if c := arg(1); c != "" {
			cursor = &c
		}
		return client.FetchUserFollowers(ctx, fid, v1.PageOptions{Limit: &limit, Cursor: cursor})
	case "cast":
		paramType := v2.CastParamHash
		if strings.HasPrefix(arg(0), "http") {
			paramType = v2.CastParamURL
		}
		return notFound(client.LookupCastByHashOrWarpcastURL(ctx, arg(0), paramType))
	case "feed":
		fid, err := strconv.ParseUint(arg(0), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fid '%s': %w", arg(0), err)
		}
		if c := arg(1); c != "" {
			cursor = &c
		}
		return client.FetchFeedPage(ctx, v2.FeedFollowing, v2.FeedOptions{
			FID:    &fid,
			Limit:  &limit,
			Cursor: cursor,
		})
	case "publish":
		return client.PublishCast(ctx, arg(0), arg(1), v2.PublishCastOptions{})
	default:
		return nil, fmt.Errorf("unknown command '%s'", cmd)
	}
}

// watch starts a bot that replies to every new mention of the configured fid
// until the context is cancelled.
func watch(ctx context.Context, cfg *config.Config, coolDown time.Duration, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("reply content is required")
	}
	reply := args[0]
	hubConfig, err := cfg.HubConfig()
	if err != nil {
		return err
	}
	hubClient, err := hub.New(hubConfig)
	if err != nil {
		return err
	}
	mentionBot, err := bot.New(bot.BotConfig{
		Hub:      hubClient,
		CoolDown: coolDown,
		Since:    uint64(time.Now().Unix()),
	})
	if err != nil {
		return err
	}
	mentionBot.SetCallback(func(_ context.Context, mention hub.Mention) (string, error) {
		log.Infow("mention received", "author", mention.Author, "cast", mention.Hash, "text", mention.Content)
		return reply, nil
	})
	if err := mentionBot.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	log.Warnf("received SIGTERM, exiting at %s", time.Now().Format(time.RFC850))
	log.Info("waiting for routines to end gracefully...")
	mentionBot.Stop()
	log.Debug("all routines ended")
	return nil
}

// notFound reports an absent result as an error, the lookups return nil for
// unknown entities.
func notFound[T any](v *T, err error) (*T, error) {
	if err == nil && v == nil {
		return nil, fmt.Errorf("not found")
	}
	return v, err
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
