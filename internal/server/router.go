// Package server exposes the solver over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-ricrob/recursivesolver/internal/board"
	"github.com/go-ricrob/recursivesolver/internal/puzzle"
	"github.com/go-ricrob/recursivesolver/internal/solver"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// DefaultMaxMovesLimit is used if Config.MaxMovesLimit is not set.
const DefaultMaxMovesLimit = 6

var errMaxMovesLimit = errors.New("max_moves exceeds the server limit")

// Router manages the HTTP server.
type Router struct {
	addr       string
	baseURL    string
	maxMoves   int
	startDepth int
	limit      int
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr       string // Address to listen on
	BaseURL    string // Base URL for API routes
	MaxMoves   int    // Default maximum number of moves, 0 means rows * cols
	StartDepth int    // First depth bound of the search

	// MaxMovesLimit is the largest number of moves a request may search.
	// Requests asking for more are rejected, implicit bounds are clamped.
	MaxMovesLimit int
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	limit := config.MaxMovesLimit
	if limit <= 0 {
		limit = DefaultMaxMovesLimit
	}
	return &Router{
		addr:       config.Addr,
		baseURL:    config.BaseURL,
		maxMoves:   config.MaxMoves,
		startDepth: config.StartDepth,
		limit:      limit,
	}
}

// Engine returns the gin engine with all routes registered.
func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger)

	api := engine.Group(r.baseURL)
	v1 := api.Group("/v1")
	{
		v1.GET("/health", r.health)
		v1.POST("/solve", r.solve)
		v1.POST("/visualize", r.visualize)
	}
	return engine
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	log.WithField("addr", r.addr).Info("starting http server")
	return r.Engine().Run(r.addr)
}

// requestLogger assigns a request id and logs the request when done.
func requestLogger(ctx *gin.Context) {
	id := uuid.New()
	ctx.Set(requestIDKey, id)
	start := time.Now()

	ctx.Next()

	log.WithFields(log.Fields{
		"id":       id,
		"method":   ctx.Request.Method,
		"path":     ctx.Request.URL.Path,
		"status":   ctx.Writer.Status(),
		"duration": time.Since(start),
	}).Info("request")
}

func requestID(ctx *gin.Context) uuid.UUID {
	if v, ok := ctx.Get(requestIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.New()
}

func (r *Router) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bound returns the search bound of request for board b.
func (r *Router) bound(request *SolveRequest, b *board.Board) (int, error) {
	if request.MaxMoves > r.limit {
		return 0, fmt.Errorf("%w: %d > %d", errMaxMovesLimit, request.MaxMoves, r.limit)
	}
	maxMoves := request.MaxMoves
	if maxMoves == 0 {
		maxMoves = r.maxMoves
	}
	if maxMoves == 0 {
		maxMoves = b.Rows() * b.Cols()
	}
	return min(maxMoves, r.limit), nil
}

// load binds the request and loads its puzzle. On failure the error response
// is written and ok is false.
func (r *Router) load(ctx *gin.Context) (request SolveRequest, b *board.Board, maxMoves int, ok bool) {
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, nil, 0, false
	}
	b, err := puzzle.Load(strings.NewReader(request.Puzzle))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, nil, 0, false
	}
	if maxMoves, err = r.bound(&request, b); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, nil, 0, false
	}
	return request, b, maxMoves, true
}

func (r *Router) solve(ctx *gin.Context) {
	request, b, maxMoves, ok := r.load(ctx)
	if !ok {
		return
	}

	id := requestID(ctx)
	runner := solver.New(b,
		solver.WithMaxDepth(maxMoves),
		solver.WithStartDepth(r.startDepth),
		solver.WithLogger(log.WithField("id", id)),
		solver.WithContext(ctx.Request.Context()),
	)

	var result solver.Resulter
	if request.AllSolutions {
		result = runner.RunAll()
	} else {
		result = runner.Run()
	}
	if err := result.Err(); err != nil {
		ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	response := &SolveResponse{
		ID:          id,
		Solved:      result.Solved(),
		MaxMoves:    result.MaxDepth(),
		NumCalcMove: result.NumCalcMove(),
	}
	if result.Solved() {
		response.Moves = toMoves(result.Moves())
		if request.AllSolutions {
			for _, s := range result.Solutions() {
				response.Solutions = append(response.Solutions, toMoves(s))
			}
		}
	}
	ctx.JSON(http.StatusOK, response)
}

func (r *Router) visualize(ctx *gin.Context) {
	_, b, maxMoves, ok := r.load(ctx)
	if !ok {
		return
	}

	grid, err := solver.AccessibilityContext(ctx.Request.Context(), b, maxMoves)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, &VisualizeResponse{
		ID:       requestID(ctx),
		MaxMoves: maxMoves,
		Grid:     grid,
	})
}
