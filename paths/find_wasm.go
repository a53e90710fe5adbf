//go:build js && wasm
// +build js,wasm

package paths

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// In the browser there is no filesystem to probe; files are fetched
// over HTTP relative to the page and cached in memory so they can be
// served through a seekable reader.

var (
	cache     map[string]*bytes.Buffer
	cacheLock sync.Mutex
)

func possiblePathsImp(fileName string) []string {
	return []string{fileName}
}

func openImp(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	return noFindOpenImp(fileName)
}

func noFindOpenImp(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	cacheLock.Lock()
	defer cacheLock.Unlock()

	if cache == nil {
		cache = make(map[string]*bytes.Buffer)
	}
	if buf, ok := cache[fileName]; ok {
		return &bytesReaderWithDummyClose{bytes.NewReader(buf.Bytes())}, nil
	}

	glog.V(1).Infof("paths: fetching %q over http", fileName)
	response, err := http.Get(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "go-wolf/paths: could not fetch %q", fileName)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		e := os.ErrInvalid
		if response.StatusCode == http.StatusNotFound {
			e = os.ErrNotExist
		}
		return nil, errors.Wrapf(e, "go-wolf/paths: fetching %q: status %d, want 200", fileName, response.StatusCode)
	}

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, response.Body); err != nil {
		return nil, errors.Wrapf(err, "go-wolf/paths: copying %q to seekable buffer", fileName)
	}
	cache[fileName] = buf
	return &bytesReaderWithDummyClose{bytes.NewReader(buf.Bytes())}, nil
}

type bytesReaderWithDummyClose struct {
	*bytes.Reader
}

func (bytesReaderWithDummyClose) Close() error {
	return nil
}
