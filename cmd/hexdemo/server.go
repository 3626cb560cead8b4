package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gogpu/hexmap"
	"github.com/gogpu/hexmap/internal/cache"
	"github.com/gogpu/hexmap/internal/preview"
)

// imageCacheSize bounds the number of encoded maps kept in memory.
const imageCacheSize = 64

type mapHandler struct {
	base   config
	images *cache.Cache[config, []byte]
}

func newRouter(base config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	h := &mapHandler{base: base, images: cache.New[config, []byte](imageCacheSize)}
	h.RegisterRoutes(r)
	return r
}

func (h *mapHandler) RegisterRoutes(r chi.Router) {
	r.Get("/map.png", h.image)
	r.Get("/layout", h.layout)
}

// build resolves the request's config and layout, writing an error
// response and returning ok=false on failure.
func (h *mapHandler) build(w http.ResponseWriter, r *http.Request) (config, *hexmap.Layout, bool) {
	c, err := h.base.apply(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return c, nil, false
	}
	l, err := c.layout()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return c, nil, false
	}
	return c, l, true
}

func (h *mapHandler) image(w http.ResponseWriter, r *http.Request) {
	c, l, ok := h.build(w, r)
	if !ok {
		return
	}
	opts, err := c.previewOptions(l)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	data, err := h.images.GetOrCreate(c.key(), func() ([]byte, error) {
		img, err := preview.Render(l, opts)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		hexmap.Logger().Warn("write map failed", "err", err)
	}
}

// layout writes the fitted dimensions followed by one line per tile:
// display coordinate, edge and canvas center.
func (h *mapHandler) layout(w http.ResponseWriter, r *http.Request) {
	_, l, ok := h.build(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fmt.Fprintf(bw, "size %v\n", l.Size())
	fmt.Fprintf(bw, "stroke %f\n", l.StrokeWidth())
	fmt.Fprintf(bw, "tile %v\n", l.TileSize())
	fmt.Fprintf(bw, "footprint %v\n", l.Footprint())
	fmt.Fprintf(bw, "padding %v\n", l.Padding())
	fmt.Fprintf(bw, "origin %v\n", l.TileOrigin())
	for tile := range l.Tiles() {
		fmt.Fprintf(bw, "%v %v %v\n", tile.Display, tile.Edge, tile.Center)
	}
}

// statusFor maps request and layout construction errors to HTTP status
// codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadQuery):
		return http.StatusBadRequest
	case errors.Is(err, errTooLarge),
		errors.Is(err, hexmap.ErrDegenerateLayout),
		errors.Is(err, hexmap.ErrUnknownVariant),
		errors.Is(err, hexmap.ErrInvalidOperand):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
