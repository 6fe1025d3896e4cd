package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bmorelli/kaleido-go"
)

// frameRecord is one rendered frame's worth of automation data.
type frameRecord struct {
	Time     float64            `json:"time"`
	Beat     bool               `json:"beat,omitempty"`
	Uniforms map[string]float64 `json:"uniforms"`
}

type bandRecord struct {
	Time    float64 `json:"time"`
	Bass    float64 `json:"bass"`
	Mid     float64 `json:"mid"`
	Treble  float64 `json:"treble"`
	Overall float64 `json:"overall"`
	Beat    bool    `json:"beat,omitempty"`
}

func main() {
	var (
		wavPath   = flag.String("file", "", "path to a WAV file (required)")
		fps       = flag.Int("fps", 60, "animation frames per second")
		statePath = flag.String("state", "", "state document to load before rendering")
		outPath   = flag.String("out", "", "output path (default stdout)")
		bandsOnly = flag.Bool("bands", false, "emit band levels only, skip the parameter engine")
	)
	flag.Parse()

	if *wavPath == "" {
		log.Fatal("missing -file: a WAV input is required")
	}

	var (
		out any
		err error
	)
	if *bandsOnly {
		out, err = analyzeBands(*wavPath, *fps)
	} else {
		out, err = renderAutomation(*wavPath, *fps, *statePath)
	}
	if err != nil {
		log.Fatal(err)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	data = append(data, '\n')
	if *outPath == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d frames to %s\n", frameCount(out), *outPath)
}

// renderAutomation drives a full parameter engine through the file offline,
// the same Tap-then-Advance loop the interactive viewer runs in realtime,
// and records the uniform map each frame.
func renderAutomation(wavPath string, fps int, statePath string) ([]frameRecord, error) {
	core, err := kaleido.New()
	if err != nil {
		return nil, err
	}
	if statePath != "" {
		data, err := os.ReadFile(statePath)
		if err != nil {
			return nil, err
		}
		skipped, err := core.LoadDocument(data)
		if err != nil {
			return nil, fmt.Errorf("load state %s: %w", statePath, err)
		}
		for _, key := range skipped {
			log.Printf("state: skipping unknown parameter %q", key)
		}
	}
	core.StartReactivity()

	dt := 1.0 / float64(fps)
	var (
		frames []frameRecord
		now    float64
	)
	err = kaleido.StreamWAV(wavPath, fps, func(sampleRate int, chunk []float32) error {
		core.Tap(chunk)
		core.Advance(dt)
		frames = append(frames, frameRecord{
			Time:     now,
			Beat:     core.Bands().Beat,
			Uniforms: core.Uniforms(nil),
		})
		now += dt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return frames, nil
}

func analyzeBands(wavPath string, fps int) ([]bandRecord, error) {
	bands, err := kaleido.AnalyzeWAV(wavPath, fps)
	if err != nil {
		return nil, err
	}
	dt := 1.0 / float64(fps)
	out := make([]bandRecord, 0, len(bands))
	for i, b := range bands {
		out = append(out, bandRecord{
			Time:    float64(i) * dt,
			Bass:    b.Bass,
			Mid:     b.Mid,
			Treble:  b.Treble,
			Overall: b.Overall,
			Beat:    b.Beat,
		})
	}
	return out, nil
}

func frameCount(v any) int {
	switch frames := v.(type) {
	case []frameRecord:
		return len(frames)
	case []bandRecord:
		return len(frames)
	}
	return 0
}
