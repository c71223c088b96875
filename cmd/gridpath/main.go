package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/internal/planner"
	"github.com/sirupsen/logrus"
)

func main() {
	var requestFile = flag.String("request", "-", "Path of the JSON path request, - for stdin")
	var strategy = flag.String("strategy", "", "Strategy overriding the one in the request")
	var compare = flag.Bool("compare", false, "Also report the optimal cost and the gap to it")
	var asJSON = flag.Bool("json", false, "Print the full response as JSON")
	var logLevel = flag.String("logLevel", "warn", "Log level")
	flag.Parse()

	if err := logger.InitLogger(*logLevel, "text"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Log.SetOutput(os.Stderr)

	cfg, err := config.GetConfig()
	if err != nil {
		logger.Log.Fatal("Invalid configuration: ", err)
	}

	req, err := readRequest(*requestFile)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"file": *requestFile, "error": err}).Fatal("Unable to read request")
	}
	if *strategy != "" {
		req.Strategy = *strategy
	}
	req.CompareOptimal = req.CompareOptimal || *compare

	p := planner.New(planner.Defaults{
		Strategy:      cfg.DefaultStrategy,
		Connectivity:  cfg.DefaultConnectivity,
		CostModel:     cfg.DefaultCostModel,
		MaxExpansions: cfg.MaxExpansions,
		MaxCells:      cfg.MaxCells,
	}, logrus.NewEntry(logger.Log))

	resp, err := p.Solve("", req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			logger.Log.Fatal("Unable to encode response: ", err)
		}
		return
	}
	printResponse(os.Stdout, resp)
}

func readRequest(name string) (planner.Request, error) {
	var req planner.Request
	in := os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return req, err
		}
		defer f.Close()
		in = f
	}
	err := json.NewDecoder(in).Decode(&req)

	return req, err
}

func printResponse(w io.Writer, resp *planner.Response) {
	for _, c := range resp.Path {
		fmt.Fprintf(w, "%d,%d\n", c.X, c.Y)
	}
	cost := "blocked"
	if resp.Cost != nil {
		cost = fmt.Sprintf("%g", *resp.Cost)
	}
	fmt.Fprintf(w, "strategy=%s steps=%d cost=%s expanded=%d", resp.Strategy, len(resp.Path)-1, cost, resp.Expanded)
	if resp.OptimalCost != nil {
		fmt.Fprintf(w, " optimal=%g", *resp.OptimalCost)
	}
	if resp.Gap != nil {
		fmt.Fprintf(w, " gap=%.4f", *resp.Gap)
	}
	fmt.Fprintln(w)
}
