package web

// This file renders the HTML landing page: a table of the attached
// archives' assets with inline thumbnails.

import (
	"bytes"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-wolf/datafiles"
)

// indexSectionLimit caps how many thumbnails one section inlines; the
// rest stays reachable through the per-asset endpoints.
const indexSectionLimit = 64

type indexItem struct {
	Name string
	Link string
	// Typed so the template engine does not strip the data: scheme.
	Thumb template.URL
}

type indexSection struct {
	Title string
	Count int
	Items []indexItem
}

var (
	indexTemplateOnce sync.Once
	indexTemplate     *template.Template
	indexTemplateErr  error
)

func getIndexTemplate() (*template.Template, error) {
	indexTemplateOnce.Do(func() {
		indexTemplate, indexTemplateErr = template.New("assettable").Parse(datafiles.AssetTableHTML())
	})
	return indexTemplate, indexTemplateErr
}

func thumbDataURL(img image.Image) template.URL {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return ""
	}
	return template.URL(dataurl.New(buf.Bytes(), "image/png").String())
}

func (h *Handler) indexSectionFor(title, linkFormat string, count int, name func(int) string, decode func(int) (image.Image, error)) indexSection {
	section := indexSection{Title: title, Count: count}
	limit := count
	if limit > indexSectionLimit {
		limit = indexSectionLimit
	}
	for i := 0; i < limit; i++ {
		img, err := decode(i)
		if err != nil {
			glog.V(1).Infof("web: index thumbnail %s %d: %v", title, i, err)
			continue
		}
		section.Items = append(section.Items, indexItem{
			Name:  fmt.Sprintf("%d %s", i, name(i)),
			Link:  fmt.Sprintf(linkFormat, i),
			Thumb: thumbDataURL(img),
		})
	}
	return section
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := getIndexTemplate()
	if err != nil {
		glog.Errorf("error parsing asset table template: %v", err)
		http.Error(w, "asset table template broken", http.StatusInternalServerError)
		return
	}

	var page struct {
		Sections []indexSection
	}

	h.assetLock.Lock()
	if swap, err := h.th.VSwap(); err == nil {
		page.Sections = append(page.Sections,
			h.indexSectionFor("Textures", "/texture/%d", swap.TextureCount(), h.th.TextureName, h.th.Texture),
			h.indexSectionFor("Sprites", "/sprite/%d", swap.SpriteCount(), h.th.SpriteName, h.th.Sprite),
		)
	}
	if graphics, err := h.th.Graphics(); err == nil {
		page.Sections = append(page.Sections,
			h.indexSectionFor("Pics", "/pic/%d", graphics.PicCount(), func(int) string { return "" }, h.th.Pic),
		)
	}
	h.assetLock.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := tmpl.Execute(w, page); err != nil {
		glog.Errorf("error rendering asset table: %v", err)
	}
}
