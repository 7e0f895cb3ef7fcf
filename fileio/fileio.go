package fileio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/notargets/hydrocode/FV1D"
)

/*
	Result sink: one whitespace separated text file per field plus a run
	log, the layout downstream plotting scripts expect.
*/

// WriteResults writes the final fields of a run into dir, creating it
// if needed. Files are RHO.txt, U.txt, P.txt, E.txt, X.txt (moving
// meshes only) and log.txt.
func WriteResults(dir string, r FV1D.Results, rp FV1D.RunParameters) (err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create result directory: %w", err)
	}
	fields := map[string][]float64{
		"RHO": r.Rho,
		"U":   r.U,
		"P":   r.P,
		"E":   r.E,
	}
	if r.X != nil {
		fields["X"] = r.X
	}
	for name, data := range fields {
		if err = writeField(filepath.Join(dir, name+".txt"), data); err != nil {
			return
		}
	}
	return writeLog(filepath.Join(dir, "log.txt"), r, rp)
}

func writeField(path string, data []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, v := range data {
		if _, err = fmt.Fprintf(w, "%.10g\n", v); err != nil {
			return
		}
	}
	return w.Flush()
}

func writeLog(path string, r FV1D.Results, rp FV1D.RunParameters) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	var total time.Duration
	for _, d := range r.StepTimes {
		total += d
	}
	fmt.Fprintf(w, "order = %d\n", rp.Order)
	fmt.Fprintf(w, "coordinate = %s\n", rp.Coord)
	fmt.Fprintf(w, "gamma = %g\n", rp.Gamma)
	fmt.Fprintf(w, "cells = %d\n", len(r.Rho))
	fmt.Fprintf(w, "h = %g\n", rp.H)
	fmt.Fprintf(w, "final time = %g\n", r.Time)
	fmt.Fprintf(w, "steps = %d\n", r.StepsTaken)
	fmt.Fprintf(w, "wall time = %v\n", total)
	if r.StepsTaken > 0 {
		fmt.Fprintf(w, "wall time per step = %v\n", total/time.Duration(r.StepsTaken))
	}
	return w.Flush()
}

// ReadField reads one whitespace separated field file back.
func ReadField(path string) (data []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := strings.TrimSpace(scanner.Text())
		if tok == "" {
			continue
		}
		var v float64
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("bad value %q in %s: %w", tok, path, err)
		}
		data = append(data, v)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return
}
