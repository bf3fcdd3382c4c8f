package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/palette"
	"github.com/jmylchreest/distinct/internal/seed"
)

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// PaletteResponse is returned by /api/v1/palette.
type PaletteResponse struct {
	Count  int         `json:"count"`
	Mode   colour.Mode `json:"mode"`
	Seed   int64       `json:"seed,string"`
	Colors []string    `json:"colors"`
}

// SimulatedColour is one observer's view of a colour.
type SimulatedColour struct {
	Variant colour.Variant `json:"variant"`
	Hex     string         `json:"hex"`
}

// SimulateResponse is returned by /api/v1/simulate.
type SimulateResponse struct {
	Input     string            `json:"input"`
	Mode      colour.Mode       `json:"mode"`
	Simulated []SimulatedColour `json:"simulated"`
}

// DistanceResponse is returned by /api/v1/distance.
type DistanceResponse struct {
	A               string      `json:"a"`
	B               string      `json:"b"`
	Mode            colour.Mode `json:"mode"`
	Distance        float64     `json:"distance"`
	Distinguishable bool        `json:"distinguishable"`
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	success(w, HealthResponse{Status: "healthy"}, s.logger)
}

// handleGeneratePalette generates a palette. Bad counts fall back to the
// default and unknown modes to normal vision; only a malformed seed is rejected.
func (s *Server) handleGeneratePalette(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := palette.NewRequest(q.Get("n"), q.Get("mode"))

	seedValue := s.randomSeed()
	if raw := q.Get("seed"); raw != "" {
		v, err := seed.ParseValue(raw)
		if err != nil {
			badRequest(w, err.Error(), s.logger)
			return
		}
		seedValue = v
	}

	gen := palette.NewGenerator(s.config.PaletteConfig(), seed.NewRand(seedValue), s.logger.Named("generator"))
	p, err := gen.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.logger.Debug("palette request abandoned", "error", err)
			writeError(w, http.StatusServiceUnavailable, "request cancelled", s.logger)
			return
		}
		s.logger.Error("failed to generate palette", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error", s.logger)
		return
	}

	success(w, PaletteResponse{
		Count:  p.Len(),
		Mode:   req.Mode,
		Seed:   seedValue,
		Colors: p.ToHex(),
	}, s.logger)
}

// handleSimulate shows a colour under each simulation variant of a mode.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := colour.ParseHex(q.Get("hex"))
	if err != nil {
		badRequest(w, err.Error(), s.logger)
		return
	}
	mode := colour.ModeOrDefault(q.Get("mode"))

	variants := mode.Variants()
	out := make([]SimulatedColour, len(variants))
	for i, v := range variants {
		out[i] = SimulatedColour{Variant: v, Hex: colour.Simulate(c, v).Hex()}
	}

	success(w, SimulateResponse{
		Input:     c.Hex(),
		Mode:      mode,
		Simulated: out,
	}, s.logger)
}

// handleDistance reports the perceptual distance between two colours.
func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, err := colour.ParseHex(q.Get("a"))
	if err != nil {
		badRequest(w, err.Error(), s.logger)
		return
	}
	b, err := colour.ParseHex(q.Get("b"))
	if err != nil {
		badRequest(w, err.Error(), s.logger)
		return
	}
	mode := colour.ModeOrDefault(q.Get("mode"))
	minDelta := s.config.Generator.MinDelta

	d := colour.Distance(a, b, mode)
	success(w, DistanceResponse{
		A:               a.Hex(),
		B:               b.Hex(),
		Mode:            mode,
		Distance:        d,
		Distinguishable: d >= minDelta,
	}, s.logger)
}
