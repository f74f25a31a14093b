// Command adjudicate resolves a single Diplomacy movement phase from a JSON
// document and prints the result as JSON. It is a thin CLI wrapper around
// package adjudicator; all adjudication logic lives there.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/dipadj/adjudicator"
	"github.com/freeeve/dipadj/internal/diplog"
	"github.com/freeeve/dipadj/mapdata"
)

// phaseRequest is the input document: a board position plus one order per
// occupied province, keyed by the province the order originates from.
type phaseRequest struct {
	State  adjudicator.MapState                      `json:"state"`
	Orders map[adjudicator.Province]adjudicator.OrderMessage `json:"orders"`
}

// phaseResult is everything ApplyAdjudication produces, plus the raw
// per-order success/failure verdicts that drove it.
type phaseResult struct {
	Resolved map[adjudicator.Province]bool                        `json:"resolved"`
	State    *adjudicator.MapState                                `json:"state"`
	Retreats map[adjudicator.Province]*adjudicator.RetreatOptions `json:"retreats,omitempty"`
}

func main() {
	diplog.Init()

	inPath := flag.String("in", "", "path to the phase request JSON document (default: stdin)")
	outPath := flag.String("out", "", "path to write the phase result JSON document (default: stdout)")
	flag.Parse()

	if err := run(*inPath, *outPath); err != nil {
		log.Fatal().Err(err).Msg("adjudicate failed")
	}
}

func run(inPath, outPath string) (err error) {
	defer func() {
		// adjudicator panics on a programmer-error invariant violation
		// (malformed orders, e.g.), never on a legitimate game state; the
		// CLI is the boundary that turns that into an ordinary error.
		if r := recover(); r != nil {
			if ie, ok := r.(*adjudicator.InvariantError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	in, err := openInput(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var req phaseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode phase request: %w", err)
	}

	orders, err := adjudicator.DecodeOrders(req.Orders)
	if err != nil {
		return fmt.Errorf("decode orders: %w", err)
	}

	m := mapdata.Standard()

	log.Info().Int("orders", len(orders)).Msg("adjudicating phase")
	resolved := adjudicator.Adjudicate(m, &req.State, orders)

	next, retreats := adjudicator.ApplyAdjudication(m, &req.State, orders, resolved)

	result := phaseResult{
		Resolved: resolved,
		State:    next,
		Retreats: retreats,
	}

	out, err := openOutput(outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode phase result: %w", err)
	}

	log.Info().Int("resolved", len(resolved)).Int("retreats", len(retreats)).Msg("phase adjudicated")
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
