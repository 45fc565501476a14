package preview

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	f7 "github.com/lamarque/go-f7"
)

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	r.HandleFunc("/", s.page(SinglePage)).Methods("GET")
	r.HandleFunc("/tabs", s.page(TabsPage)).Methods("GET")
	r.HandleFunc("/split", s.page(SplitPage)).Methods("GET")
	r.HandleFunc("/inputs", s.page(InputsPage)).Methods("GET")

	r.HandleFunc("/manifest.webmanifest", s.manifest).Methods("GET")

	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir("assets"))),
	).Methods("GET")

	return r
}

// page renders a layout builder into a full document response.
func (s *Server) page(build func(cfg f7.Config) *f7.Node) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		doc := f7.AppShell(s.cfg, build(s.cfg))
		if err := f7.RenderDocument(w, doc); err != nil {
			s.logger.Error("render page", zap.Error(err))
		}
	}
}

func (s *Server) manifest(w http.ResponseWriter, r *http.Request) {
	body, err := f7.Manifest(s.cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/manifest+json")
	_, _ = w.Write(body)
}
