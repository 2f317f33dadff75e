package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/rs/zerolog"

	"github.com/legalforce-research/vaporetto-go"
)

func main() {
	modelPath := flag.String("model", "", "path to a compiled model (gob)")
	withTags := flag.Bool("tags", false, "also predict per-token tags")
	flag.Parse()

	if *modelPath == "" {
		glog.Fatal("-model is required")
	}

	f, err := os.Open(*modelPath)
	if err != nil {
		glog.Fatal("opening model: ", err)
	}
	model, err := vaporetto.LoadModel(f)
	f.Close()
	if err != nil {
		glog.Fatal("loading model: ", err)
	}

	predictor, err := vaporetto.New(model, *withTags)
	if err != nil {
		glog.Fatal("building predictor: ", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 1024*1024), 1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for in.Scan() {
		line := in.Text()
		start := time.Now()

		sent, err := vaporetto.NewSentenceFromText(line)
		if err != nil {
			logger.Warn().Err(err).Str("line", line).Msg("skipping invalid sentence")
			continue
		}

		predictor.Predict(sent)
		if *withTags {
			predictor.FillTags(sent)
		}

		body, err := sent.ToJSON()
		if err != nil {
			logger.Warn().Err(err).Msg("marshaling result")
			continue
		}
		out.Write(body)
		out.WriteByte('\n')

		logger.Info().
			Int("chars", sent.Len()).
			Int("tokens", len(sent.ToTokenizedVec())).
			Dur("elapsed", time.Since(start)).
			Msg("predicted")
	}
	if err := in.Err(); err != nil {
		glog.Fatal("reading stdin: ", err)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
