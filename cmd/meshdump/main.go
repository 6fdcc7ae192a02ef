package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/skobkin/meshlink/internal/app"
	"github.com/skobkin/meshlink/internal/config"
	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/radio"
	"github.com/skobkin/meshlink/internal/transport"
)

const (
	initialConfigWaitTimeout = 45 * time.Second
	maxSummaryNodes          = 20
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		slog.Error("run meshdump", "error", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	configPath   string
	connector    string
	host         string
	port         int
	serialPort   string
	baud         int
	replayPath   string
	replayFormat string
	listenFor    time.Duration
	httpAddr     string
	logLevel     string
	logFormat    string
	listPorts    bool
	clearCache   bool
	noCache      bool
	noSubscribe  bool
	version      bool

	set *pflag.FlagSet
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := pflag.NewFlagSet(app.Name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (.json, .toml or .yaml)")
	fs.StringVar(&f.connector, "connector", "", "connector: ip, serial or none")
	fs.StringVar(&f.host, "host", "", "radio ip/hostname")
	fs.IntVar(&f.port, "port", config.DefaultIPPort, "radio tcp port")
	fs.StringVar(&f.serialPort, "serial", "", "serial device, e.g. /dev/ttyACM0")
	fs.IntVar(&f.baud, "baud", config.DefaultSerialBaud, "serial baud rate")
	fs.StringVar(&f.replayPath, "replay", "", "replay a captured session instead of connecting (.gz and .zst are decompressed)")
	fs.StringVar(&f.replayFormat, "replay-format", string(app.ReplayHex), "replay capture format: hex or stream")
	fs.DurationVar(&f.listenFor, "listen-for", 0, "keep listening for this long after the config download, e.g. 30s")
	fs.StringVar(&f.httpAddr, "http-addr", "", "serve metrics, nodes and events on this address, e.g. 127.0.0.1:9464")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	fs.BoolVar(&f.listPorts, "list-ports", false, "list serial ports and exit")
	fs.BoolVar(&f.clearCache, "clear-cache", false, "wipe the node cache before starting")
	fs.BoolVar(&f.noCache, "no-cache", false, "do not read or write the node cache")
	fs.BoolVar(&f.noSubscribe, "no-subscribe", false, "exit after the initial config download completes")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if fs.NArg() > 0 {
		return cliFlags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	f.set = fs

	return f, nil
}

func (f cliFlags) changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}

// apply overrides config values with the flags given on the command line.
func (f cliFlags) apply(cfg *config.AppConfig) {
	if f.changed("connector") {
		cfg.Connection.Connector = config.ConnectorType(f.connector)
	}
	if f.changed("host") {
		cfg.Connection.Host = strings.TrimSpace(f.host)
		if !f.changed("connector") {
			cfg.Connection.Connector = config.ConnectorIP
		}
	}
	if f.changed("port") {
		cfg.Connection.Port = f.port
	}
	if f.changed("serial") {
		cfg.Connection.SerialPort = strings.TrimSpace(f.serialPort)
		if !f.changed("connector") {
			cfg.Connection.Connector = config.ConnectorSerial
		}
	}
	if f.changed("baud") {
		cfg.Connection.SerialBaud = f.baud
	}
	if f.replayPath != "" {
		cfg.Connection.Connector = config.ConnectorNone
	}
	if f.changed("http-addr") {
		cfg.HTTP.ListenAddr = strings.TrimSpace(f.httpAddr)
	}
	if f.changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if f.changed("log-format") {
		cfg.Logging.Format = config.LogFormat(f.logFormat)
	}
	if f.noCache {
		cfg.Storage.Enabled = false
	}
	// Console output is the point of this tool.
	cfg.Logging.LogToFile = false
}

func run(args []string, stdout, stderr io.Writer) error {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if flags.version {
		_, _ = fmt.Fprintf(stdout, "%s %s (%s) %s\n", app.Name, app.BuildVersion(), app.BuildDateYMD(), app.SourceURL)
		return nil
	}
	if flags.listPorts {
		ports, err := transport.ListSerialPorts()
		if err != nil {
			return err
		}
		for _, p := range ports {
			_, _ = fmt.Fprintln(stdout, p)
		}
		return nil
	}
	replayFormat, err := app.ParseReplayFormat(flags.replayFormat)
	if err != nil {
		return err
	}
	if flags.noCache && flags.clearCache {
		return errors.New("--clear-cache needs the node cache, drop --no-cache")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := app.Initialize(ctx, app.Options{
		ConfigPath: flags.configPath,
		Configure:  flags.apply,
		LogWriter:  stderr,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil {
			slog.Warn("close runtime", "error", closeErr)
		}
	}()
	logger := rt.LogManager.Logger("cli")

	if flags.clearCache {
		if err := rt.ClearDatabase(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
	}

	out := &lockedWriter{w: stdout}
	unsubscribe := rt.Radio.Subscribe(func(ev radio.Event) {
		_, _ = fmt.Fprintln(out, formatEvent(ev))
	})
	defer unsubscribe()

	if err := rt.ServeHTTP(); err != nil {
		return err
	}

	if flags.replayPath != "" {
		if err := replay(ctx, rt, flags.replayPath, replayFormat, out, logger); err != nil {
			return err
		}
	} else {
		if err := rt.Start(); err != nil {
			return fmt.Errorf("start radio: %w", err)
		}
		logger.Info("waiting for initial config", "target", app.ConnectionTarget(rt.Config.Connection), "timeout", initialConfigWaitTimeout)
		waitCtx, cancel := context.WithTimeout(ctx, initialConfigWaitTimeout)
		err := rt.Radio.WaitConfigured(waitCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("initial config did not complete: %w", err)
		}
		printSummary(out, rt.Radio)
		if flags.noSubscribe {
			return nil
		}
	}

	return listen(ctx, rt, flags, logger)
}

func replay(ctx context.Context, rt *app.Runtime, path string, format app.ReplayFormat, out io.Writer, logger *slog.Logger) error {
	rc, err := app.OpenReplay(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	stats, err := app.Replay(ctx, rc, format, rt.Radio.HandleFromRadio, logger)
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}
	logger.Info("replay finished",
		"frames", stats.Frames,
		"handled", stats.Handled,
		"failed", stats.Failed,
		"skipped_bytes", stats.SkippedBytes,
	)
	printSummary(out, rt.Radio)

	return nil
}

// listen keeps the process alive for --listen-for, or until interrupted when
// the HTTP API is up. Replays without either exit right away.
func listen(ctx context.Context, rt *app.Runtime, flags cliFlags, logger *slog.Logger) error {
	var timeout <-chan time.Time
	switch {
	case flags.listenFor > 0:
		logger.Info("listen mode", "duration", flags.listenFor)
		timeout = time.After(flags.listenFor)
	case flags.replayPath != "" && rt.HTTPErrors() == nil:
		return nil
	default:
		logger.Info("listening until interrupt")
	}

	select {
	case <-ctx.Done():
		return nil
	case <-timeout:
		return nil
	case err := <-rt.HTTPErrors():
		return err
	}
}

func formatEvent(ev radio.Event) string {
	name := radio.EventName(ev)
	switch e := ev.(type) {
	case radio.MyInfoEvent:
		return fmt.Sprintf("%s node=%s reboots=%d", name, domain.FormatNodeID(e.NodeNum), e.RebootCount)
	case radio.NodeUpdatedEvent:
		return fmt.Sprintf("%s node=%s name=%q type=%s", name, e.Node.NodeID, e.Node.DisplayName(), e.Update.Type)
	case radio.ModuleConfigEvent:
		return fmt.Sprintf("%s section=%s", name, e.Section)
	case radio.ConfigEvent:
		return fmt.Sprintf("%s section=%s", name, e.Section)
	case radio.ConfigCompleteEvent:
		return fmt.Sprintf("%s id=%d expected=%t", name, e.ID, e.Expected)
	case radio.TextMessageEvent:
		return fmt.Sprintf("%s chat=%s from=%s body=%q", name, e.Message.ChatKey, domain.FormatNodeID(e.Message.FromNodeNum), e.Message.Body)
	case radio.MessageStatusEvent:
		return fmt.Sprintf("%s id=%s status=%v reason=%q", name, e.Update.DeviceMessageID, e.Update.Status, e.Update.Reason)
	case radio.ChannelEvent:
		if e.Info == nil {
			return fmt.Sprintf("%s disabled index=%d", name, e.Channel.GetIndex())
		}
		return fmt.Sprintf("%s title=%q", name, e.Info.Title)
	case radio.LogRecordEvent:
		return fmt.Sprintf("%s %s", name, strings.TrimSpace(e.Record.GetMessage()))
	default:
		return name
	}
}

type nodeSource interface {
	LocalNode() domain.Node
	Nodes() []domain.Node
}

func printSummary(w io.Writer, src nodeSource) {
	local := src.LocalNode()
	_, _ = fmt.Fprintf(w, "local node %s\n", domain.FormatNodeID(local.Num))
	if local.ModuleConfig != nil {
		raw, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(local.ModuleConfig)
		if err == nil {
			_, _ = fmt.Fprintf(w, "module config:\n%s\n", raw)
		}
	}

	nodes := src.Nodes()
	_, _ = fmt.Fprintf(w, "known nodes: %d\n", len(nodes))
	for i, node := range nodes {
		if i >= maxSummaryNodes {
			_, _ = fmt.Fprintf(w, "  ... %d more\n", len(nodes)-i)
			break
		}
		heard := "never"
		if !node.LastHeardAt.IsZero() {
			heard = node.LastHeardAt.Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(w, "  %s  %-24s  heard %s  signal %s\n", node.NodeID, node.DisplayName(), heard, node.SignalQuality())
	}
}

// lockedWriter serializes event lines coming from the frame goroutine with
// the summary printed by the main one.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
