// Command wolfweb serves the data files over HTTP: an asset index page
// plus per-asset endpoints for textures, sprites, pics, maps, sounds
// and music.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace" // registers /debug/requests on the default mux

	"badc0de.net/pkg/go-wolf/things/full"
	"badc0de.net/pkg/go-wolf/web"
)

var (
	listenAddress      = flag.String("listen_address", ":8080", "http listen address for wolfweb")
	debugListenAddress = flag.String("debug_listen_address", "", "http listen address for the debug mux; empty disables it")
)

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()

	figure.NewFigure("wolfweb", "", true).Print()

	th, err := full.FromFilePathFlags()
	if err != nil {
		glog.Fatalf("error loading data files: %v", err)
	}
	defer th.Close()

	r := mux.NewRouter()
	h := web.NewHandler(th, full.PathFlagValue(full.FlagVSwapPath))
	h.RegisterRoutes(r)

	if *debugListenAddress != "" {
		go func() {
			glog.Infof("wolfweb debug server listening on %s", *debugListenAddress)
			glog.Error(http.ListenAndServe(*debugListenAddress, nil))
		}()
	}

	glog.Infof("wolfweb listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress,
		handlers.CombinedLoggingHandler(os.Stdout, handlers.CompressHandler(r))))
}
