package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/todosim/core/config"
	"github.com/dmitrymomot/todosim/core/notify"
	"github.com/dmitrymomot/todosim/core/todo"
	"github.com/dmitrymomot/todosim/pkg/logger"
	"github.com/dmitrymomot/todosim/pkg/workload"
)

// todosim runs the simulated backend under random workload until interrupted,
// then prints the final store state. Tune it via TODOSIM_* and WORKLOAD_*
// environment variables or a .env file.
func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var simCfg todo.Config
	config.MustLoad(&simCfg)
	var loadCfg workload.Config
	config.MustLoad(&loadCfg)

	channel := notify.NewChannel(notify.WithLogger(log))
	channel.Subscribe(notify.ListenerFunc(func(n notify.Notification) {
		log.Info("mutation observed",
			logger.Event(n.Kind),
			logger.SequenceID(n.SequenceID))
	}))

	service := todo.NewFromConfig(channel, simCfg)

	gen, err := workload.New(service, loadCfg, workload.WithLogger(log))
	if err != nil {
		log.Error("failed to build workload generator", logger.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("simulation started",
		slog.Float64("success_rate", simCfg.SuccessRate),
		slog.Duration("max_latency", simCfg.MaxLatency),
		slog.Duration("min_period", loadCfg.MinPeriod),
		slog.Duration("max_period", loadCfg.MaxPeriod))

	if err := gen.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("workload generator stopped", logger.Error(err))
	}

	lists, err := service.ListLists().Await()
	if err != nil {
		log.Error("final read failed", logger.Error(err))
		os.Exit(1)
	}

	stats := channel.Stats()
	log.Info("simulation finished",
		logger.Count("lists", len(lists)),
		slog.Uint64("notifications", stats.Dispatched))

	for i, list := range lists {
		fmt.Printf("%3d  %-24s %3d items\n", i, list.Name, len(list.Items))
		for j, item := range list.Items {
			mark := " "
			if item.Done {
				mark = "x"
			}
			fmt.Printf("     [%s] %3d  %s\n", mark, j, item.Description)
		}
	}
}
