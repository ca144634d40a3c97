// Command kernel runs a headless match from a recorded input script and
// reports what the simulation emitted.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/beatchain/assets"
	"github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/core"
	"github.com/automoto/beatchain/logging"
	"github.com/automoto/beatchain/replay"
	"github.com/automoto/beatchain/shared/chardata"
	"github.com/automoto/beatchain/shared/messages"
	"github.com/automoto/beatchain/shared/stagedata"
)

func main() {
	configPath := flag.String("config", "beatchain.ini", "INI file overriding kernel defaults")
	logFile := flag.String("log", "", "Log file (empty = stdout only)")
	logLevel := flag.String("loglevel", "info", "Log level")
	assetDir := flag.String("assets", "", "Directory with characters/ and stages/ (empty = bundled)")
	p1 := flag.String("p1", "ronin", "Player one character")
	p2 := flag.String("p2", "wraith", "Player two character")
	stageName := flag.String("stage", "dojo", "Stage name")
	scriptPath := flag.String("replay", "", "Recording to play (empty = idle frames)")
	ticks := flag.Int("ticks", 600, "Idle frames to run when no recording is given")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	save := flag.String("save", "", "Store the played recording under this name")
	verify := flag.Bool("verify", false, "Play the recording twice and compare")
	flag.Parse()

	if err := config.Load(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logging.Init(*logFile, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logging.Sync()
	log := logging.Log

	fsys := assets.FS()
	if *assetDir != "" {
		fsys = os.DirFS(*assetDir)
	}

	lib, stages, err := loadContent(fsys)
	if err != nil {
		log.Fatalw("failed to load content", "error", err)
	}

	rec := &replay.Recording{Characters: [2]string{*p1, *p2}}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalw("failed to read recording", "path", *scriptPath, "error", err)
		}
		if rec, err = replay.Decode(data); err != nil {
			log.Fatalw("failed to parse recording", "path", *scriptPath, "error", err)
		}
	} else {
		rec.Frames = idleFrames(*ticks)
	}

	stage, err := selectStage(stages, rec, *stageName)
	if err != nil {
		log.Fatalw("failed to select stage", "error", err)
	}
	rec.Stage = stage.Name

	if *verify {
		if err := replay.Verify(lib, stage, rec); err != nil {
			log.Fatalw("verification failed", "error", err)
		}
		return
	}

	match, err := core.NewMatch(lib, stage, rec.Characters)
	if err != nil {
		log.Fatalw("failed to create match", "error", err)
	}

	recorder := replay.NewRecorder(rec.Characters, rec.Stage)
	loop := core.NewGameLoop(match, recorder.Recorded(rec.Source()), *tickRate)

	var hits, blocks int
	loop.OnTick(func(r core.TickResult) {
		hits += len(r.Hits)
		blocks += len(r.Blocks)
		for _, t := range r.Transitions {
			log.Debugw("transition", "tick", t.Tick, "id", t.CharacterID, "transition", t.Transition, "attack", t.Attack)
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Shutting down match...")
		loop.Stop()
	}()

	stepped := loop.Run()
	log.Infow("match finished", "ticks", stepped, "hits", hits, "blocks", blocks)

	if *save != "" {
		store, err := replay.OpenStore("beatchain")
		if err != nil {
			log.Fatalw("failed to open replay store", "error", err)
		}
		if err := store.Save(*save, recorder.Recording()); err != nil {
			log.Fatalw("failed to save replay", "error", err)
		}
	}
}

func loadContent(fsys fs.FS) (*chardata.Library, map[string]*stagedata.Stage, error) {
	lib := chardata.NewLibrary()
	if _, err := lib.LoadAll(fsys, assets.CharactersDir); err != nil {
		return nil, nil, err
	}
	stages, _, err := stagedata.LoadAll(fsys, assets.StagesDir)
	if err != nil {
		return nil, nil, err
	}
	return lib, stages, nil
}

// selectStage picks the stage a recording was made on, or fallback when
// the recording names none.
func selectStage(stages map[string]*stagedata.Stage, rec *replay.Recording, fallback string) (*stagedata.Stage, error) {
	name := fallback
	if rec.Stage != "" {
		name = rec.Stage
	}
	stage, ok := stages[name]
	if !ok {
		return nil, fmt.Errorf("unknown stage %q", name)
	}
	return stage, nil
}

func idleFrames(n int) core.Frames {
	frames := make(core.Frames, n)
	for i := range frames {
		frames[i] = [2]messages.FighterInput{messages.NeutralInput(0), messages.NeutralInput(1)}
	}
	return frames
}
