// Package web serves the decoded assets over HTTP: textures, sprites
// and pics as PNG, sprite ranges as animated GIF, maps as rendered
// floor plans, sounds as WAV and music as IMF downloads.
package web

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-wolf/maprender"
	"badc0de.net/pkg/go-wolf/things"
	"badc0de.net/pkg/go-wolf/wav"
	"badc0de.net/pkg/go-wolf/wl6"
)

type Handler struct {
	// The archives decode lazily off shared seekable readers, so
	// decoding serializes on this lock.
	assetLock sync.Mutex

	th *things.Things

	vswapPath string
}

// NewHandler constructs a web handler for the passed things registry.
// vswapPath, when not empty, supplies Last-Modified headers.
func NewHandler(th *things.Things, vswapPath string) *Handler {
	return &Handler{
		th:        th,
		vswapPath: vswapPath,
	}
}

// generation is baked into ETags; bump if the way assets render
// changes.
const generation = 1

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, etag string) bool {
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func (h *Handler) setCacheHeaders(w http.ResponseWriter, etag, mime string) {
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	if h.vswapPath != "" {
		if s, err := os.Stat(h.vswapPath); err == nil {
			w.Header().Set("Last-Modified", s.ModTime().Format(http.TimeFormat))
		}
	}
}

func muxIntVar(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

func (h *Handler) textureHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	mime := "image/png"
	etag := fmt.Sprintf(`W/"texture:%d:%d:%s"`, generation, idx, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	h.assetLock.Lock()
	img, err := h.th.Texture(idx)
	h.assetLock.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

func (h *Handler) spriteHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	mime := "image/png"
	etag := fmt.Sprintf(`W/"sprite:%d:%d:%s"`, generation, idx, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	h.assetLock.Lock()
	img, err := h.th.Sprite(idx)
	h.assetLock.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

// spriteGIFHandler animates a contiguous sprite range, such as a guard
// walk cycle, as a looping GIF.
func (h *Handler) spriteGIFHandler(w http.ResponseWriter, r *http.Request) {
	first, err := muxIntVar(r, "first")
	if err != nil {
		http.Error(w, "first not a number", http.StatusBadRequest)
		return
	}
	last, err := muxIntVar(r, "last")
	if err != nil {
		http.Error(w, "last not a number", http.StatusBadRequest)
		return
	}
	if last < first || last-first > 63 {
		http.Error(w, "bad sprite range", http.StatusBadRequest)
		return
	}

	delay := 12 // in 100ths of a second
	if d := r.URL.Query().Get("delay"); d != "" {
		delay, _ = strconv.Atoi(d)
		// ignore invalid delay
	}

	mime := "image/gif"
	etag := fmt.Sprintf(`W/"sprite:%d:%d-%d:%d:%s"`, generation, first, last, delay, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	g := gif.GIF{}
	quantizer := quantize.MedianCutQuantizer{} // up to 255 colors plus 1 space for transparency
	for i := first; i <= last; i++ {
		h.assetLock.Lock()
		img, err := h.th.Sprite(i)
		h.assetLock.Unlock()
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		pal := quantizer.Quantize(make(color.Palette, 0, 255), img)

		// Transparency is the first palette color so the empty image
		// defaults to it.
		palTransparent := image.NewPaletted(img.Bounds(), append(color.Palette{color.Transparent}, pal...))
		draw.Draw(palTransparent, img.Bounds(), img, image.Point{}, draw.Over)

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
		g.BackgroundIndex = 0 // color.Transparent
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	gif.EncodeAll(w, &g)
}

func (h *Handler) picHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	var src, dst image.Rectangle
	if x := r.URL.Query().Get("x"); x != "" {
		src.Min.X, _ = strconv.Atoi(x)
	}
	if y := r.URL.Query().Get("y"); y != "" {
		src.Min.Y, _ = strconv.Atoi(y)
	}
	if wq := r.URL.Query().Get("w"); wq != "" {
		dst.Max.X, _ = strconv.Atoi(wq)
		src.Max.X = src.Min.X + dst.Max.X
	}
	if hq := r.URL.Query().Get("h"); hq != "" {
		dst.Max.Y, _ = strconv.Atoi(hq)
		src.Max.Y = src.Min.Y + dst.Max.Y
	}

	mime := "image/png"
	etag := fmt.Sprintf(`W/"pic:%d:%d:%d.%d.%d.%d:%s"`, generation, idx, src.Min.X, src.Min.Y, src.Max.X, src.Max.Y, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	h.assetLock.Lock()
	img, err := h.th.Pic(idx)
	h.assetLock.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if dst.Max.X != 0 && dst.Max.Y != 0 {
		cropped := image.NewRGBA(dst)
		draw.Draw(cropped, dst, img, src.Min, draw.Over)
		img = cropped
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

func (h *Handler) tile8Handler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	mime := "image/png"
	etag := fmt.Sprintf(`W/"tile8:%d:%d:%s"`, generation, idx, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	graphics, err := h.th.Graphics()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.assetLock.Lock()
	img, err := graphics.Tile8(idx)
	h.assetLock.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

func (h *Handler) mapHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	tileSize := 16
	if ts := r.URL.Query().Get("tilesize"); ts != "" {
		tileSize, _ = strconv.Atoi(ts)
		// ignore invalid tilesize
	}
	if tileSize < 1 {
		tileSize = 1
	}
	if tileSize > 64 {
		tileSize = 64
	}

	mime := "image/png"
	etag := fmt.Sprintf(`W/"map:%d:%d:%d:%s"`, generation, idx, tileSize, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	h.assetLock.Lock()
	m, err := h.th.TileMap(idx)
	if err != nil {
		h.assetLock.Unlock()
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	img, err := maprender.Render(h.th, m, tileSize)
	h.assetLock.Unlock()
	if err != nil {
		glog.Errorf("error rendering map %d: %v", idx, err)
		http.Error(w, "failed to render map", http.StatusInternalServerError)
		return
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

// soundHandler serves one digitized sound as a WAV download.
func (h *Handler) soundHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	mime := "audio/wav"
	etag := fmt.Sprintf(`W/"sound:%d:%d:%s"`, generation, idx, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	swap, err := h.th.VSwap()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.assetLock.Lock()
	samples, err := swap.SampledSound(idx)
	h.assetLock.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	wav.Write(w, wl6.SampledSoundRate, samples)
}

// buzzerHandler synthesizes one PC speaker sound and serves it as WAV.
func (h *Handler) buzzerHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	rate := 44100
	if rq := r.URL.Query().Get("rate"); rq != "" {
		rate, _ = strconv.Atoi(rq)
		// ignore invalid rate
	}
	if rate < 8000 || rate > 96000 {
		rate = 44100
	}

	mime := "audio/wav"
	etag := fmt.Sprintf(`W/"buzzer:%d:%d:%d:%s"`, generation, idx, rate, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	audio, err := h.th.Audio()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	buzzer, ok := wl6.FindAudioPartition("buzzer")
	if !ok || idx < 0 || idx >= buzzer.Count {
		http.Error(w, "buzzer sound index out of range", http.StatusNotFound)
		return
	}
	h.assetLock.Lock()
	sound, err := audio.BuzzerSound(buzzer.Start + idx)
	h.assetLock.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.setCacheHeaders(w, etag, mime)
	w.WriteHeader(http.StatusOK)
	wav.Write(w, rate, sound.Samples(rate))
}

// musicHandler serves one music track as an IMF chunk download.
func (h *Handler) musicHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := muxIntVar(r, "idx")
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return
	}

	mime := "application/octet-stream"
	etag := fmt.Sprintf(`W/"music:%d:%d:%s"`, generation, idx, mime)
	if h.serveCached(w, r, etag) {
		return
	}

	audio, err := h.th.Audio()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	music, ok := wl6.FindAudioPartition("music")
	if !ok || idx < 0 || idx >= music.Count {
		http.Error(w, "music index out of range", http.StatusNotFound)
		return
	}
	h.assetLock.Lock()
	m, err := audio.Music(music.Start + idx)
	h.assetLock.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.setCacheHeaders(w, etag, mime)
	if idx < len(wl6.MusicNames) {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.imf", wl6.MusicNames[idx]))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(m.ToIMF())
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/texture/{idx:[0-9]+}", h.textureHandler)
	r.HandleFunc("/sprite/{idx:[0-9]+}", h.spriteHandler)
	r.HandleFunc("/sprite/{first:[0-9]+}-{last:[0-9]+}.gif", h.spriteGIFHandler)
	r.HandleFunc("/pic/{idx:[0-9]+}", h.picHandler)
	r.HandleFunc("/tile8/{idx:[0-9]+}", h.tile8Handler)
	r.HandleFunc("/map/{idx:[0-9]+}", h.mapHandler)
	r.HandleFunc("/sound/{idx:[0-9]+}.wav", h.soundHandler)
	r.HandleFunc("/buzzer/{idx:[0-9]+}.wav", h.buzzerHandler)
	r.HandleFunc("/music/{idx:[0-9]+}.imf", h.musicHandler)
}
