package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dsipanel/internal/config"
	"dsipanel/internal/hw"
	appLog "dsipanel/internal/log"
	"dsipanel/internal/notify"
	"dsipanel/internal/panel"
	"dsipanel/internal/power"
	"dsipanel/internal/schedule"
	"dsipanel/internal/variant"
	"dsipanel/internal/web"
)

// flagConfig holds CLI flag values; non-empty values override the config file.
type flagConfig struct {
	configPath string
	variant    string
	listen     string
	logLevel   string
	once       bool
	list       bool
}

func main() {
	flags := parseFlags()

	if flags.list {
		for _, id := range variant.IDs() {
			fmt.Println(id)
		}
		return
	}

	if err := run(flags); err != nil {
		appLog.Error("panelctl failed", err)
		os.Exit(1)
	}
}

func run(flags flagConfig) error {
	conf, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", flags.configPath, err)
	}
	if flags.variant != "" {
		conf.Variant = flags.variant
	}
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	if flags.logLevel != "" {
		conf.LogLevel = flags.logLevel
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	level, err := appLog.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	appLog.SetLevel(level)

	appLog.Info("panelctl starting", "version", "0.1.0")

	cfg, ok := variant.Lookup(conf.Variant)
	if !ok {
		return fmt.Errorf("unknown panel variant %q (see -list)", conf.Variant)
	}

	appLog.Info("effective config",
		"variant", cfg.ID,
		"listen", conf.Listen,
		"reset", conf.Reset.Driver,
		"power", conf.Power.Driver,
		"channel", conf.Channel.Driver,
		"schedule_off", conf.Schedule.Off,
		"schedule_on", conf.Schedule.On,
		"once", flags.once,
	)

	hwb, err := hw.Open(conf.Reset, conf.Power, conf.Channel)
	if err != nil {
		return err
	}
	defer func() {
		if err := hwb.Close(); err != nil {
			appLog.Error("failed to release hardware", err)
		}
	}()

	pwr, err := power.New(hwb.Rail, hwb.Reset)
	if err != nil {
		return err
	}
	ctrl, err := panel.New(cfg, hwb.Channel, pwr)
	if err != nil {
		return err
	}
	guard := panel.NewGuard(ctrl)

	if flags.once {
		return cycleOnce(guard)
	}

	pub, err := notify.New(conf.MQTT, guard)
	if err != nil {
		return err
	}
	guard.Observe(pub.Publish)
	if err := pub.Connect(); err != nil {
		appLog.Error("mqtt connect failed", err)
	}
	defer pub.Disconnect()

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The panel is always torn down on the way out, whatever state it is in.
	defer func() {
		appLog.Info("tearing down panel", "id", ctrl.ID())
		guard.Teardown()
	}()

	if err := guard.Prepare(); err != nil {
		appLog.Error("initial prepare failed", err, "variant", cfg.ID)
	} else {
		appLog.Info("panel on", "id", ctrl.ID(), "variant", cfg.ID)
	}

	blanker, err := schedule.New(guard, conf.Schedule.Off, conf.Schedule.On)
	if err != nil {
		return err
	}
	blanker.Start()
	defer blanker.Stop()

	if conf.Listen == "" {
		<-ctx.Done()
		appLog.Info("signal received, shutting down")
		return nil
	}
	srv := web.NewServer(conf, guard)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	appLog.Info("shutting down")
	return nil
}

// cycleOnce runs one prepare/unprepare cycle, for bring-up on the bench.
func cycleOnce(g *panel.Guard) error {
	if err := g.Prepare(); err != nil {
		g.Teardown()
		return fmt.Errorf("prepare: %w", err)
	}
	st := g.Status()
	appLog.Info("panel on", "variant", st.Variant, "modes", len(st.Modes))
	if err := g.Unprepare(); err != nil {
		g.Teardown()
		return fmt.Errorf("unprepare: %w", err)
	}
	appLog.Info("panel off")
	return nil
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "/etc/panelctl/config.yaml", "Path to config file")
	flag.StringVar(&cfg.variant, "variant", "", "Panel variant id (overrides config if set)")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.StringVar(&cfg.logLevel, "log-level", "", "debug, info, warn or error (overrides config if set)")
	flag.BoolVar(&cfg.once, "once", false, "Run one prepare/unprepare cycle and exit")
	flag.BoolVar(&cfg.list, "list", false, "List known panel variants and exit")

	flag.Parse()

	return cfg
}
