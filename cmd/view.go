package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// viewerPage is a minimal self-contained viewer for the saved events
// file. It fetches /events.json and renders one card per event.
const viewerPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Events</title>
<style>
  body { font-family: sans-serif; margin: 2rem auto; max-width: 48rem; }
  .event { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
  .event h2 { margin: 0 0 0.25rem; font-size: 1.1rem; }
  .meta { color: #666; font-size: 0.9rem; }
  .status { text-transform: uppercase; font-size: 0.75rem; }
</style>
</head>
<body>
<h1>Events</h1>
<div id="events">Loading…</div>
<script>
fetch('/events.json')
  .then(function (res) { return res.json(); })
  .then(function (data) {
    var container = document.getElementById('events');
    container.textContent = '';
    if (!data.events || data.events.length === 0) {
      container.textContent = 'No events found.';
      return;
    }
    data.events.forEach(function (ev) {
      var div = document.createElement('div');
      div.className = 'event';
      var title = document.createElement('h2');
      var link = document.createElement('a');
      link.href = ev.url;
      link.textContent = ev.name;
      title.appendChild(link);
      var meta = document.createElement('p');
      meta.className = 'meta';
      meta.textContent = ev.start + ' – ' + ev.end;
      var status = document.createElement('p');
      status.className = 'status';
      status.textContent = ev.status;
      div.appendChild(title);
      div.appendChild(meta);
      div.appendChild(status);
      container.appendChild(div);
    });
  })
  .catch(function (err) {
    document.getElementById('events').textContent = 'Failed to load events: ' + err;
  });
</script>
</body>
</html>
`

// newViewCmd creates the view command, which serves a saved events file
// with a small HTML viewer.
func newViewCmd() *cobra.Command {
	var (
		addr      string
		inputFile string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Serve saved events over HTTP with a simple viewer page",
		Long: `Serve a previously fetched events file over HTTP together with a
small HTML page that renders it. Run the fetch command first to produce
the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(inputFile); err != nil {
				return fmt.Errorf("events file %s not found; run 'eventbrite-mcp fetch' first", inputFile)
			}
			return runView(addr, inputFile)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":3000", "Address to serve on")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "events.json", "Events file to serve")

	return cmd
}

func runView(addr, inputFile string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(viewerPage))
	})

	mux.HandleFunc("/events.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, inputFile)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Serving %s at http://localhost%s/\n", inputFile, addr)
	return srv.ListenAndServe()
}
