// ABOUTME: Host diagnostics: interpreter, environment freshness, manifest, package index
// ABOUTME: Checks run concurrently via errgroup; each yields a name/status/detail row

package doctor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/interp"
	"github.com/MountainEclipse/venvup/internal/lockfile"
	"github.com/MountainEclipse/venvup/internal/venv"
)

// DefaultIndexURL is the package index probed when the config does not
// override it.
const DefaultIndexURL = "https://pypi.org/simple"

const indexProbeTimeout = 10 * time.Second

// Check is one diagnostic result.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Run executes all diagnostics for cfg concurrently and returns them in a
// stable order regardless of completion timing.
func Run(ctx context.Context, cfg *config.Config) []Check {
	checks := []func(context.Context, *config.Config) Check{
		checkInterpreter,
		checkEnvironment,
		checkManifest,
		checkIndex,
	}

	results := make([]Check, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, fn := range checks {
		g.Go(func() error {
			results[i] = fn(gctx, cfg)
			return nil
		})
	}
	g.Wait() // check failures are data, not errors
	return results
}

func checkInterpreter(ctx context.Context, cfg *config.Config) Check {
	py, err := interp.Find(ctx, cfg.Python)
	if err != nil {
		return Check{Name: "interpreter", Detail: err.Error()}
	}
	return Check{
		Name:   "interpreter",
		OK:     true,
		Detail: fmt.Sprintf("python %s (%s)", py.Version, strings.Join(py.Argv, " ")),
	}
}

func checkEnvironment(_ context.Context, cfg *config.Config) Check {
	env := venv.New(cfg.EnvDir)
	if !env.Exists() {
		return Check{Name: "environment", OK: true, Detail: "absent (will be created on next run)"}
	}
	lock, err := lockfile.Load(cfg.EnvDir)
	if err != nil {
		return Check{Name: "environment", Detail: fmt.Sprintf("present, lock unreadable: %v", err)}
	}
	if lock == nil {
		return Check{Name: "environment", Detail: "present but unlocked (will be rebuilt)"}
	}
	return Check{Name: "environment", OK: true,
		Detail: fmt.Sprintf("present, built %s for python %s", lock.CreatedAt.Format("2006-01-02"), lock.Python)}
}

func checkManifest(_ context.Context, cfg *config.Config) Check {
	fi, err := os.Stat(cfg.Requirements)
	if err != nil {
		return Check{Name: "requirements", Detail: err.Error()}
	}
	return Check{Name: "requirements", OK: true,
		Detail: fmt.Sprintf("%s (%d bytes)", cfg.Requirements, fi.Size())}
}

// checkIndex fetches one known project page from the simple index and parses
// it as HTML, confirming the index answers with link listings rather than an
// error page from a proxy. The body read is capped: the full simple index
// would be tens of megabytes.
func checkIndex(ctx context.Context, cfg *config.Config) Check {
	base := cfg.IndexURL
	if base == "" {
		base = DefaultIndexURL
	}
	url := strings.TrimSuffix(base, "/") + "/pip/"

	probeCtx, cancel := context.WithTimeout(ctx, indexProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, url, nil)
	if err != nil {
		return Check{Name: "package index", Detail: err.Error()}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Check{Name: "package index", Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Check{Name: "package index", Detail: fmt.Sprintf("%s: %s", url, resp.Status)}
	}

	links, err := countAnchors(io.LimitReader(resp.Body, 1<<18))
	if err != nil {
		return Check{Name: "package index", Detail: fmt.Sprintf("parsing index page: %v", err)}
	}
	if links == 0 {
		return Check{Name: "package index", Detail: fmt.Sprintf("%s returned no package links", url)}
	}
	return Check{Name: "package index", OK: true, Detail: fmt.Sprintf("%s reachable", base)}
}

// countAnchors parses HTML and counts <a> elements. A body truncated by the
// read cap still parses; the html package closes open elements at EOF.
func countAnchors(r io.Reader) (int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return 0, err
	}
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return count, nil
}
