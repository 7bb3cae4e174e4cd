package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sdengine/sdecs"
	"github.com/sdengine/sdecs/config"
	"github.com/sdengine/sdecs/layer"
	"github.com/sdengine/sdecs/layers"
	"github.com/sdengine/sdecs/log"
	"github.com/sdengine/sdecs/render"
)

func newRunCmd() *cobra.Command {
	var (
		frames   int
		spawn    int
		logLevel string
		console  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the frame loop headless",
		Long: `Run the frame loop with scripted input and a recording renderer.

Settings come from SD_* environment variables and may be overridden with
flags.`,
		Example: "sdengine run --frames 120 --spawn 500 --log-level debug",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("frames") {
				cfg.Frames = frames
			}
			if flags.Changed("spawn") {
				cfg.SpawnCount = spawn
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, cmd, cfg, console)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 0, "number of frames to run, 0 runs until interrupted")
	cmd.Flags().IntVar(&spawn, "spawn", 0, "entities spawned per spawn key press")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn, error, critical or off")
	cmd.Flags().BoolVar(&console, "console", true, "log to the console as well as SD_LOG_FILE")
	return cmd
}

// script presses the spawn key on the first frame, reports a resize on the
// second and deletes one entity halfway through.
func script(frames int) *layer.ScriptedInput {
	in := layer.NewScriptedInput().
		At(0, &layer.KeyPressed{Key: layer.KeySpace}).
		EngineAt(1, layer.WindowResize{Width: 1280, Height: 720})
	if frames > 2 {
		in.At(frames/2, &layer.KeyPressed{Key: layer.KeyDelete})
	}
	return in
}

func run(ctx context.Context, cmd *cobra.Command, cfg config.Engine, console bool) error {
	logger, closer, err := log.New(cfg.Log(console))
	if err != nil {
		return err
	}
	defer closer.Close()

	manager := sdecs.NewEntityManager(
		sdecs.WithLogger(logger),
		sdecs.WithInitialCapacity(cfg.InitialEntities),
	)
	recorder := &render.Recorder{Logger: logger}
	app := layer.NewApplication(
		layer.WithAppLogger(logger),
		layer.WithManager(manager),
		layer.WithInput(script(cfg.Frames)),
		layer.WithRenderer(recorder),
	)
	defer app.Close()

	app.Layers.AttachTop(layers.NewMotionLayer(manager))
	app.Layers.AttachTop(layers.NewSpawnLayer(manager, cfg.SpawnCount, 1))
	app.Layers.AttachTop(layers.NewPerformanceLayer(logger))
	layer.Subscribe(app.Events, func(ev layer.WindowResize) {
		logger.Info().Int("width", ev.Width).Int("height", ev.Height).Msg("window resized")
	})

	n, err := app.Run(ctx, cfg.Frames, cfg.FixedDelta)
	if err != nil && !eris.Is(err, context.Canceled) {
		return err
	}
	manager.LogStores(zerolog.DebugLevel)
	fmt.Fprintf(cmd.OutOrStdout(), "frames=%d entities=%d draws=%d batches=%d\n",
		n, manager.Len(), recorder.Draws, recorder.Batches)
	return nil
}
