//go:build linux

package serve

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/starsoc/linux-star-x7/config"
	"github.com/starsoc/linux-star-x7/drivers/display"
	"github.com/starsoc/linux-star-x7/drivers/hdmi"
	"github.com/starsoc/linux-star-x7/drivers/hotplug"
	"github.com/starsoc/linux-star-x7/notify"
	"github.com/starsoc/linux-star-x7/telemetry"
	"github.com/starsoc/linux-star-x7/tools/setup"
)

const usageString = `Run the display daemon.

Usage: %s [flags]

Programs the configured default mode, follows the monitor's hot plug state
and serves metrics, state and events over HTTP.

`

var (
	flags = flag.NewFlagSet("serve", flag.ExitOnError)

	cfgfile = setup.ConfigFlag(flags)
	listen  = flags.String("listen", "", "HTTP `address`, the configured one if empty")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "serve")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])
	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(1)
	}

	cfg, err := setup.Config(*cfgfile)
	if err != nil {
		log.Fatalln(err)
	}
	if err := setup.Cmdline(cfg); err != nil {
		log.Fatalln(err)
	}
	if *listen != "" {
		cfg.HTTP.Listen = *listen
	}
	logger := log.Default()

	space, closer, err := setup.Space(cfg.Device)
	if err != nil {
		log.Fatalln(err)
	}
	defer closer.Close()
	tx, txCloser, err := setup.Transmitter(cfg.Transmitter, logger)
	if err != nil {
		log.Fatalln(err)
	}
	defer txCloser.Close()
	if e, ok := tx.(hdmi.HotplugEnabler); ok {
		if err := e.EnableHotplug(); err != nil {
			logger.Printf("serve: enable hot plug interrupt: %v", err)
		}
	}

	hub := notify.NewHub(logger)
	notifiers := notify.Multi{hub}
	if cfg.MQTT.Enabled {
		if m, err := notify.DialMQTT(cfg.MQTT.MQTTConfig, logger); err != nil {
			logger.Printf("serve: %v, events go to websocket clients only", err)
		} else {
			defer m.Close()
			notifiers = append(notifiers, m)
		}
	}

	def, err := cfg.Mode.Request()
	if err != nil {
		log.Fatalln(err)
	}
	c := display.New(space, display.Options{
		Default:     def,
		Transmitter: tx,
		Notifier:    notifiers,
		Metrics:     telemetry.New(prometheus.DefaultRegisterer),
		Log:         logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := c.SetMode(ctx, def); err != nil {
		logger.Printf("serve: default mode: %v", err)
	}
	if tx != nil {
		go watch(ctx, cfg.Hotplug, c, tx, logger)
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Listen,
		Handler: NewHandler(c, hub, prometheus.DefaultGatherer),
	}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(sctx)
		hub.Close()
	}()

	logger.Printf("serve: listening on %s", cfg.HTTP.Listen)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
	}
}

// watch follows the hot plug state. Without an interrupt pin the state is
// detected once.
func watch(ctx context.Context, cfg config.HotplugConfig, c *display.Controller, tx hdmi.Transmitter, logger *log.Logger) {
	retries := cfg.Retries
	if retries == 0 {
		retries = -1
	}
	w := &hotplug.Watcher{
		Detector:      tx,
		Debounce:      cfg.Debounce,
		Retries:       retries,
		RetryInterval: cfg.RetryInterval,
		Log:           logger,
	}
	if cfg.Pin != "" {
		pin, err := hotplug.OpenPin(cfg.Pin)
		if err == nil {
			w.Source = pin
			c.Run(ctx, w.Run(ctx))
			return
		}
		logger.Printf("serve: %v, detecting once", err)
	}
	if ev, ok := w.Detect(ctx); ok {
		c.HandleEvent(ev)
	}
}
