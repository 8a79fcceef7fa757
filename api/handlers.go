package api

import (
	"context"
	"errors"
	"fmt"
	"gridpath/config"
	"gridpath/core"
	"gridpath/export"
	"gridpath/grid"
	"gridpath/pathfinding"
	"gridpath/render"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// SearchTimeout bounds a single search request.
const SearchTimeout = 10 * time.Second

// GridRequest describes a grid either as glyph rows or as generation
// parameters. Zero values fall back to the console defaults.
type GridRequest struct {
	Rows   []string `json:"rows,omitempty"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Walls  *int     `json:"walls,omitempty"`
	Seed   int64    `json:"seed"`
}

// PathRequest asks for a search on a grid.
type PathRequest struct {
	GridRequest
	Start       *core.Point `json:"start"`
	Destination *core.Point `json:"destination"`
	Accumulated bool        `json:"accumulated"`
}

// GridResponse is returned by GET /api/grid.
type GridResponse struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Seed   int64    `json:"seed"`
	Rows   []string `json:"rows"`
	Board  string   `json:"board"`
}

// PathResponse is returned by POST /api/path.
type PathResponse struct {
	export.Document
	Board         string  `json:"board"`
	ExecutionTime float64 `json:"executionTimeMs"`
}

// CacheSize is the number of search results each handler remembers.
const CacheSize = 256

// Handler serves the API endpoints.
type Handler struct {
	finder      *pathfinding.CachedPathFinder
	accumulated *pathfinding.CachedPathFinder
}

// NewHandler creates a handler. Both search modes share opts, so limits such
// as WithMaxNodes apply to accumulated requests too.
func NewHandler(opts ...pathfinding.Option) *Handler {
	accumulated := append(append([]pathfinding.Option{}, opts...), pathfinding.WithAccumulatedCost())
	return &Handler{
		finder:      pathfinding.NewCachedPathFinder(pathfinding.NewPathFinder(opts...), CacheSize),
		accumulated: pathfinding.NewCachedPathFinder(pathfinding.NewPathFinder(accumulated...), CacheSize),
	}
}

// Health reports that the server is up along with cache statistics.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"cache":       h.finder.CacheStats(),
		"accumulated": h.accumulated.CacheStats(),
	})
}

// Grid generates a grid from query parameters.
func (h *Handler) Grid(c *gin.Context) {
	req, err := parseGridQuery(c)
	if err != nil {
		log.Printf("[WARN] Bad grid request: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}

	g, err := req.build()
	if err != nil {
		log.Printf("[WARN] Bad grid request: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[INFO] Generated %dx%d grid (seed %d)", g.Width(), g.Height(), req.Seed)
	c.JSON(http.StatusOK, GridResponse{
		Width:  g.Width(),
		Height: g.Height(),
		Seed:   req.Seed,
		Rows:   g.Strings(),
		Board:  render.DrawBoard(g),
	})
}

// Path designates start and destination, searches and returns the marked
// grid. Unavailable cells are rejected with 400.
func (h *Handler) Path(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[WARN] Bad path request: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	g, err := req.build()
	if err == nil {
		err = req.designate(g)
	}
	if err != nil {
		log.Printf("[WARN] Bad path request: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var finder pathfinding.Searcher = h.finder
	if req.Accumulated {
		finder = h.accumulated
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), SearchTimeout)
	defer cancel()

	startTime := time.Now()
	res, err := finder.Search(ctx, g)
	executionTime := float64(time.Since(startTime).Microseconds()) / 1000.0
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, pathfinding.ErrNodeLimit) {
			status = http.StatusServiceUnavailable
		}
		log.Printf("[WARN] Search failed: %v", err)
		c.AbortWithStatusJSON(status, gin.H{"error": "Failed to find path: " + err.Error()})
		return
	}

	g.MarkChecked(res.Checked)
	g.MarkPath(res.Path)

	c.JSON(http.StatusOK, PathResponse{
		Document:      export.NewDocument(g, res),
		Board:         render.DrawBoard(g),
		ExecutionTime: executionTime,
	})
	log.Printf("[INFO] Sent path response (found: %t, checked: %d)", res.Found, len(res.Checked))
}

func (r GridRequest) build() (*grid.Grid, error) {
	if len(r.Rows) > 0 {
		g, err := grid.FromRows(r.Rows)
		if err != nil {
			return nil, fmt.Errorf("invalid rows: %w", err)
		}
		if g.Width() > config.MaxSide || g.Height() > config.MaxSide {
			return nil, fmt.Errorf("grid sides are limited to %d", config.MaxSide)
		}
		return g, nil
	}

	cfg := config.Default()
	if r.Width != 0 {
		cfg.Width = r.Width
	}
	if r.Height != 0 {
		cfg.Height = r.Height
	}
	if r.Walls != nil {
		cfg.WallPercent = *r.Walls
	}
	cfg.Seed = r.Seed
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return grid.Generate(cfg.Width, cfg.Height, cfg.GridOptions()...)
}

// designate applies the requested start and destination. Cells already
// designated by S or D rows are kept when the request omits them.
func (r PathRequest) designate(g *grid.Grid) error {
	if r.Start != nil {
		if !g.IsAvailable(r.Start.X, r.Start.Y) {
			return fmt.Errorf("start %v is not an available cell", *r.Start)
		}
		g.SetStart(r.Start.X, r.Start.Y)
	}
	if r.Destination != nil {
		if !g.IsAvailable(r.Destination.X, r.Destination.Y) {
			return fmt.Errorf("destination %v is not an available cell", *r.Destination)
		}
		g.SetDestination(r.Destination.X, r.Destination.Y)
	}
	if _, ok := g.Start(); !ok {
		return pathfinding.ErrNoStart
	}
	if _, ok := g.Destination(); !ok {
		return pathfinding.ErrNoDestination
	}
	return nil
}

func parseGridQuery(c *gin.Context) (GridRequest, error) {
	var req GridRequest
	var err error
	if req.Width, err = queryInt(c, "width"); err != nil {
		return req, err
	}
	if req.Height, err = queryInt(c, "height"); err != nil {
		return req, err
	}
	if c.Query("walls") != "" {
		walls, err := queryInt(c, "walls")
		if err != nil {
			return req, err
		}
		req.Walls = &walls
	}
	if v := c.Query("seed"); v != "" {
		if req.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, fmt.Errorf("seed: %w", err)
		}
	}
	return req, nil
}

func queryInt(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
